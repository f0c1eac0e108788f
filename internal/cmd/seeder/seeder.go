package seeder

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/golangid/subscriber-service/api"
	"github.com/golangid/subscriber-service/internal/modules/subscriber/domain"
	"github.com/golangid/subscriber-service/internal/modules/subscriber/usecase"
	"github.com/spf13/cobra"
)

// UsecaseLoader open subscriber usecase with all dependencies, returned func release them
type UsecaseLoader func() (usecase.SubscriberUsecase, func())

// NewCommand constructs seeder command, replace all subscribers with seed data
func NewCommand(loader UsecaseLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seeder",
		Short: "Replace all subscribers with seed data",
		Long:  "Remove every document in subscribers collection and insert seed data. Embedded seed data is used when --file is empty.",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			timeout, _ := cmd.Flags().GetDuration("timeout")

			reqs, err := readSeed(file)
			if err != nil {
				return err
			}

			uc, closeFunc := loader()
			defer closeFunc()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			total, err := uc.ReplaceAllSubscribers(ctx, reqs)
			if err != nil {
				return fmt.Errorf("seed subscribers: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Database seeded with %d subscribers\n", total)
			return nil
		},
	}
	cmd.Flags().StringP("file", "f", "", "path to json file contain array of {name, subscribedChannel}")
	cmd.Flags().Duration("timeout", 30*time.Second, "deadline for seeding")
	return cmd
}

func readSeed(file string) (reqs []domain.CreateSubscriberRequest, err error) {
	data := api.SeedSubscribers
	if file != "" {
		if data, err = os.ReadFile(file); err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	}

	if err = json.Unmarshal(data, &reqs); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return reqs, nil
}
