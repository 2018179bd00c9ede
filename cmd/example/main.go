// Command example walks through a typical integration: create a database,
// define properties, upload users, items and ratings, then fetch
// recommendations.
//
// Expects RECO_ROOT_EMAIL and RECO_ROOT_PASSWORD in the environment, plus
// RECO_API_BASE_URL when not talking to the production API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"

	"github.com/jrsteele09/go-reco-client/client"
	"github.com/jrsteele09/go-reco-client/models"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error running example: %s\n", err)
	}
	log.Printf("Example finished\n")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	displayAppname("reco client")

	rootEmail := os.Getenv("RECO_ROOT_EMAIL")
	rootPassword := os.Getenv("RECO_ROOT_PASSWORD")
	if rootEmail == "" || rootPassword == "" {
		return errors.New("RECO_ROOT_EMAIL and RECO_ROOT_PASSWORD must be set")
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).With().Timestamp().Logger()

	c, err := client.New(client.WithLogger(logger))
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if _, err := c.LoginRoot(ctx, rootEmail, rootPassword); err != nil {
		return fmt.Errorf("login root: %w", err)
	}

	serviceName := "example-service-" + strconv.FormatInt(time.Now().Unix(), 10)
	if _, err := c.CreateServiceAccount(ctx, serviceName, "example-password", models.RoleManager); err != nil {
		return fmt.Errorf("create service account: %w", err)
	}

	created, err := c.CreateDatabase(ctx, "example-db", "movie catalog demo", "uint32", "uint32")
	if err != nil {
		return fmt.Errorf("create database: %w", err)
	}
	log.Printf("Created database %s\n", created.ID)

	if _, err := c.LoginService(ctx, serviceName, "example-password", created.ID); err != nil {
		return fmt.Errorf("login service: %w", err)
	}

	if err := uploadCatalog(ctx, c); err != nil {
		return err
	}
	if err := waitUntilReady(ctx, c); err != nil {
		return err
	}
	return showRecommendations(ctx, c)
}

func uploadCatalog(ctx context.Context, c *client.Client) error {
	if err := c.CreateUserProperty(ctx, "age", "uint8", false); err != nil {
		return fmt.Errorf("create user property: %w", err)
	}
	if err := c.CreateItemProperty(ctx, "price", "float32", false); err != nil {
		return fmt.Errorf("create item property: %w", err)
	}

	users := make([]models.User, 10)
	for i := range users {
		users[i].SetUserID(uint32(i + 1))
		users[i].Set("age", 20+i)
	}
	if err := c.CreateOrUpdateUsersBulk(ctx, users, 0); err != nil {
		return fmt.Errorf("upload users: %w", err)
	}

	items := make([]models.Item, 20)
	for i := range items {
		items[i].SetItemID(uint32(i + 1))
		items[i].Set("price", float32(i)*1.5)
	}
	if err := c.CreateOrUpdateItemsBulk(ctx, items, 0); err != nil {
		return fmt.Errorf("upload items: %w", err)
	}

	ratings := make([]models.UserItemRating, 0, 60)
	for u := 1; u <= 10; u++ {
		for i := 1; i <= 6; i++ {
			ratings = append(ratings, models.UserItemRating{
				UserID: uint32(u),
				ItemID: uint32((u+i)%20 + 1),
				Rating: float32(1 + (u+i)%10),
			})
		}
	}
	if err := c.CreateOrUpdateRatingsBulk(ctx, ratings, 0); err != nil {
		return fmt.Errorf("upload ratings: %w", err)
	}
	return nil
}

func waitUntilReady(ctx context.Context, c *client.Client) error {
	for {
		status, err := c.GetCurrentDatabaseStatus(ctx)
		if err != nil {
			return fmt.Errorf("database status: %w", err)
		}
		if status.Status == models.DatabaseStatusReady {
			return nil
		}
		log.Printf("Database status %s, waiting\n", status.Status)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(5 * time.Second):
		}
	}
}

func showRecommendations(ctx context.Context, c *client.Client) error {
	result, err := c.RecommendUserToItems(ctx, uint32(1), nil, "", []models.Filter{
		{Property: "price", Operator: models.FilterOpGt, Value: "1"},
	}, true)
	if err != nil {
		return fmt.Errorf("recommend: %w", err)
	}
	log.Printf("Recommended items for user 1: %v\n", result.ItemsID)
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
