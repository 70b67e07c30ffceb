package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"strategy-commander/internal/config"
	config_http "strategy-commander/internal/features/config/presentation/http"
	"strategy-commander/internal/features/strategy/application"
	"strategy-commander/internal/features/strategy/infrastructure"
	strategy_http "strategy-commander/internal/features/strategy/presentation/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	productName string
	configPath  string
	serveAddr   string
)

// rootCmd runs the workflow once and renders the report to the console.
var rootCmd = &cobra.Command{
	Use:   "strategy-commander [product]",
	Short: "Five-phase marketing strategy generator",
	Long: `strategy-commander produces a marketing-strategy document for a product
by chaining five chat-completion calls, feeding each phase's output
forward as context:

  1. Market research
  2. Customer insights
  3. Marketing strategy
  4. Campaign design
  5. Quality review

Configuration comes from the environment (OPENAI_API_KEY, OPENAI_API_BASE,
OPENAI_MODEL, OPENAI_REQUEST_TIMEOUT), with optional per-phase overrides
in a JSON app config file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWorkflow,
}

// serveCmd exposes the workflow over an HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the workflow over an HTTP API",
	RunE:  runServer,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config/app_config.json", "path to the app config overrides file")
	rootCmd.Flags().StringVar(&productName, "product", "", "product name (defaults to the configured product)")
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
	rootCmd.SilenceUsage = true
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildServices wires the OpenAI generator, the pipeline service and
// the app config service. Configuration is validated here so an
// invalid setup fails before any phase executes.
func buildServices() (application.PipelineService, config.AppConfigService, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, nil, err
	}

	generator, err := infrastructure.NewOpenAIGenerator(settings.APIKey, settings.BaseURL, settings.RequestTimeout)
	if err != nil {
		return nil, nil, err
	}

	pipelineService := application.NewPipelineService(generator, settings, os.Stdout)
	appConfigService := config.NewAppConfigService(configPath)
	return pipelineService, appConfigService, nil
}

func runWorkflow(cmd *cobra.Command, args []string) error {
	pipelineService, appConfigService, err := buildServices()
	if err != nil {
		log.Println("ERROR: Configuration validation failed:", err)
		return err
	}

	appConfig, err := appConfigService.LoadAppConfig()
	if err != nil {
		return err
	}

	product := productName
	if len(args) > 0 {
		product = args[0]
	}

	_, err = pipelineService.Run(context.Background(), product, appConfig)
	return err
}

func runServer(cmd *cobra.Command, args []string) error {
	pipelineService, appConfigService, err := buildServices()
	if err != nil {
		log.Println("ERROR: Configuration validation failed:", err)
		return err
	}

	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Strategy API routes
	strategyGroup := r.Group("/api/strategy")
	{
		handler := strategy_http.NewStrategyHandler(pipelineService, appConfigService)
		strategyGroup.POST("/run", handler.RunStrategyHandler)
	}

	// Config API routes
	configGroup := r.Group("/api/config")
	{
		handler := config_http.NewAppConfigHandler(appConfigService)
		configGroup.GET("/app", handler.GetAppConfigHandler)
		configGroup.POST("/app", handler.SaveAppConfigHandler)
	}

	return r.Run(serveAddr)
}
