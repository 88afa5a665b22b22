package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-forge/internal/server"
)

var (
	servePort        int
	serveProfilesDir string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the resume generation endpoint.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveProfilesDir, "profiles-dir", "", "Directory of candidate profile JSON files (default \"resumes\", or PROFILES_DIR)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	profilesDir := serveProfilesDir
	if profilesDir == "" {
		profilesDir = os.Getenv("PROFILES_DIR")
	}

	cfg := server.Config{
		Port:        servePort,
		APIKey:      apiKey,
		Model:       os.Getenv("GEMINI_MODEL"),
		ProfilesDir: profilesDir,
		AppEnv:      os.Getenv("APP_ENV"),
	}

	srv, err := server.New(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
