package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rezonia/nidkit/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for validating and decoding national IDs.

The API provides endpoints for:
  - POST /api/v1/decode/albania     - Decode an Albanian NID
  - POST /api/v1/validate/:country  - Validate a national ID
  - GET  /api/v1/countries          - List supported countries
  - GET  /health                    - Health check

Flags can also be set via environment variables with the NIDKIT_ prefix,
e.g. NIDKIT_ADDRESS=:9090 nidkit serve.

Examples:
  # Start server on default port
  nidkit serve

  # Start on custom port in debug mode
  nidkit serve --address :9090 --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("address", ":8080", "Server listen address")
	serveCmd.Flags().Bool("debug", false, "Enable debug mode")
	serveCmd.Flags().Duration("read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().Duration("write-timeout", 30*time.Second, "HTTP write timeout")

	viper.SetEnvPrefix("NIDKIT")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("address", serveCmd.Flags().Lookup("address"))
	_ = viper.BindPFlag("debug", serveCmd.Flags().Lookup("debug"))
	_ = viper.BindPFlag("read_timeout", serveCmd.Flags().Lookup("read-timeout"))
	_ = viper.BindPFlag("write_timeout", serveCmd.Flags().Lookup("write-timeout"))
}

func runServe(cmd *cobra.Command, args []string) error {
	config := &server.Config{
		Address:      viper.GetString("address"),
		ReadTimeout:  viper.GetDuration("read_timeout"),
		WriteTimeout: viper.GetDuration("write_timeout"),
		Debug:        viper.GetBool("debug"),
	}

	srv := server.NewServer(config)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		fmt.Println("\nShutting down server...")
		os.Exit(0)
	}()

	fmt.Printf("Starting server on %s\n", config.Address)
	return srv.Run()
}
