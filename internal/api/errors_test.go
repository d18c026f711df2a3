package api

import "testing"

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			name: "with body",
			err:  &APIError{StatusCode: 422, Body: []byte(`{"message":"name is required"}`)},
			want: `API error 422: {"message":"name is required"}`,
		},
		{
			name: "without body",
			err:  &APIError{StatusCode: 500},
			want: "API error 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
