package main

import (
	"io"
	"net/http"
	"os"

	"ecertify/api/src/database"
	"ecertify/pkg/logger"

	"github.com/spf13/cobra"
)

func newRootCommand(out io.Writer) *cobra.Command {
	client := &apiClient{http: http.DefaultClient, out: out}

	base := os.Getenv("API_BASE")
	if base == "" {
		base = defaultBase
	}

	cmd := &cobra.Command{
		Use:           "api-test",
		Short:         "Drive the E-Certify API from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)
	cmd.PersistentFlags().StringVar(&client.base, "base", base, "API base url (env API_BASE)")
	cmd.PersistentFlags().StringVarP(&client.wallet, "wallet", "w", os.Getenv("WALLET_ADDRESS"), "caller wallet address (env WALLET_ADDRESS)")

	cmd.AddCommand(
		newRegisterCommand(client),
		newCertificateCommand(client),
		newGrantCommand(client),
		newTransferCommand(client),
		newGetCommand(client),
		newMigrateCommand(),
	)
	return cmd
}

func newRegisterCommand(client *apiClient) *cobra.Command {
	var email string
	var instituteId int

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register the calling wallet",
	}
	cmd.PersistentFlags().StringVar(&email, "email", "", "contact email")

	institute := &cobra.Command{
		Use:  "institute <display-name>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.postJSON("institutes", map[string]any{
				"display_name":  args[0],
				"contact_email": email,
			})
		},
	}

	student := &cobra.Command{
		Use:  "student <display-name>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]any{"display_name": args[0], "contact_email": email}
			if instituteId > 0 {
				payload["institute_id"] = instituteId
			}
			return client.postJSON("students", payload)
		},
	}
	student.Flags().IntVar(&instituteId, "institute", 0, "institute id to join")

	cmd.AddCommand(institute, student)
	return cmd
}

func newCertificateCommand(client *apiClient) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "certificate",
		Aliases: []string{"cert"},
		Short:   "Issue, upload and approve certificates",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:  "upload <student-address> <file>",
			Args: cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return client.upload("certificates/upload", args[0], args[1])
			},
		},
		&cobra.Command{
			Use:  "issue <student-address> <content-id>",
			Args: cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return client.postJSON("certificates", map[string]string{
					"student_address": args[0],
					"content_id":      args[1],
				})
			},
		},
		&cobra.Command{
			Use:  "approve <certificate-id>",
			Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return client.postJSON("certificates/"+args[0]+"/approve", nil)
			},
		},
	)
	return cmd
}

func newGrantCommand(client *apiClient) *cobra.Command {
	var hours int

	cmd := &cobra.Command{
		Use:   "grant <certificate-id> <viewer-address>",
		Short: "Let a viewer see a certificate for a while",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.postJSON("certificates/"+args[0]+"/grants", map[string]any{
				"viewer_address": args[1],
				"duration_hours": hours,
			})
		},
	}
	cmd.Flags().IntVar(&hours, "hours", 24, "grant duration in hours")
	return cmd
}

func newTransferCommand(client *apiClient) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Request and resolve institute transfers",
	}

	request := &cobra.Command{
		Use:  "request <to-institute-address>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.postJSON("transfers", map[string]string{
				"from_institute_address": from,
				"to_institute_address":   args[0],
			})
		},
	}
	request.Flags().StringVar(&from, "from", "", "current institute address")

	cmd.AddCommand(
		request,
		&cobra.Command{
			Use:  "approve <request-id> <student-address>",
			Args: cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return client.postJSON("transfers/"+args[0]+"/approve", map[string]string{"student_address": args[1]})
			},
		},
		&cobra.Command{
			Use:  "decline <request-id>",
			Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return client.postJSON("transfers/"+args[0]+"/decline", nil)
			},
		},
	)
	return cmd
}

func newGetCommand(client *apiClient) *cobra.Command {
	return &cobra.Command{
		Use:     "get <path>",
		Short:   "GET any /v1 path, e.g. students/0xabc/certificates",
		Args:    cobra.ExactArgs(1),
		Example: "api-test get institutes/0xabc/certificates/pending",
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.getJSON(args[0])
		},
	}
}

func newMigrateCommand() *cobra.Command {
	var driver, dsn string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the schema of a database",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.InitDefaultLogger(logger.GlobalLoggerConfig{
				Args: []logger.LoggerArg{{Key: "service", Value: "api-test"}},
			})
			db, err := database.Open(driver, dsn)
			if err != nil {
				return err
			}
			if err := database.AutoMigrate(db); err != nil {
				return err
			}
			cmd.Println("Migration succeeded!")
			return nil
		},
	}
	cmd.Flags().StringVar(&driver, "driver", database.DriverPostgres, "sqlite or postgres")
	cmd.Flags().StringVar(&dsn, "dsn", "host=postgres user=api_user password=api_password dbname=ecertify port=5432 sslmode=disable", "connection string")
	return cmd
}
