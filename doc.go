// Package clubhouse provides a Go client SDK for the Clubhouse REST API,
// the project-management service at https://clubhouse.io.
//
// The SDK exposes typed methods for milestones, epics, categories, and
// members, plus generic verb methods for endpoints without a typed
// wrapper. All requests are authenticated with the workspace API token.
//
// Basic usage:
//
//	client, err := clubhouse.New("your-api-token")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Create a milestone
//	milestone, err := client.CreateMilestone(ctx, &clubhouse.CreateMilestoneParams{
//	    Name: "Launch v2",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// List every epic, with pagination handled transparently
//	epics, err := client.ListEpics(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Milestone:", milestone.Name, "epics:", len(epics))
package clubhouse
