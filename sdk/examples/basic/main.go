package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/birbparty/perch/sdk"
)

func main() {
	baseURL := flag.String("instance", "https://lemmy.ml", "instance root URL")
	source := flag.String("source", "home", "home, c/<community> or u/<user>")
	flag.Parse()

	metrics := sdk.NewMetricsCollector()
	config := sdk.DefaultConfig().
		WithBaseURL(*baseURL).
		WithTimeout(10 * time.Second).
		WithObserver(metrics)

	client, err := sdk.NewClient(config)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	defer client.Close()

	ctx := context.Background()

	src, err := sdk.ParseSource(*source)
	if err != nil {
		log.Fatal(err)
	}

	// Example 1: sidebar for the source
	fmt.Println("--- Sidebar ---")
	sidebar, err := client.LoadSidebar(ctx, src)
	if err != nil {
		report(err)
		os.Exit(1)
	}
	switch {
	case sidebar.Site != nil:
		fmt.Printf("%s (Lemmy %s)\n", sidebar.Site.SiteView.Site.Name, sidebar.Site.Version)
	case sidebar.Community != nil:
		c := sidebar.Community.CommunityView
		fmt.Printf("%s: %d subscribers\n", c.Community.Title, c.Counts.Subscribers)
	case sidebar.Person != nil:
		p := sidebar.Person.PersonView
		fmt.Printf("%s: %d posts\n", p.Person.Name, p.Counts.PostCount)
	}

	// Example 2: first page of the feed
	fmt.Println("\n--- Feed ---")
	posts, err := client.LoadFeed(ctx, src, 1)
	if err != nil {
		report(err)
		os.Exit(1)
	}
	for _, pv := range posts {
		fmt.Printf("[%4d] %s (c/%s)\n", pv.Counts.Upvotes-pv.Counts.Downvotes, pv.Post.Name, pv.Community.Name)
	}

	// Example 3: comments on the first post, newest first
	if len(posts) > 0 {
		fmt.Println("\n--- Comments ---")
		url := client.BuildURL(sdk.GetOps().CommentList, sdk.GetComments{
			PostID: sdk.Ptr(posts[0].Post.ID),
			Sort:   sdk.Ptr(sdk.CommentSortNew),
			Limit:  sdk.Ptr[int32](5),
		})
		resp, err := client.GetComments(ctx, url)
		if err != nil {
			report(err)
		} else {
			for _, cv := range resp.Comments {
				fmt.Printf("%s: %s\n", cv.Creator.Name, cv.Comment.Content)
			}
		}
	}

	snap := metrics.Snapshot()
	fmt.Println("\n--- Requests ---")
	for ep, n := range snap.Requests {
		fmt.Printf("%s: %d\n", ep, n)
	}
}

func report(err error) {
	var dErr *sdk.DecodeError
	switch {
	case sdk.IsNotFound(err):
		log.Printf("Not found: %v", err)
	case errors.As(err, &dErr):
		log.Printf("Instance speaks a different schema: %s field %q", dErr.Type, dErr.Field)
	case sdk.IsTransport(err):
		log.Printf("Instance unreachable: %v", err)
	default:
		log.Printf("Request failed: %v", err)
	}
}
