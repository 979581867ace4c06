package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/duskmantle/tavernsim/internal/catalog"
	"github.com/duskmantle/tavernsim/internal/cloudwriter"
	"github.com/duskmantle/tavernsim/internal/factories"
	"github.com/duskmantle/tavernsim/internal/models"
	"github.com/duskmantle/tavernsim/internal/reports"
	"github.com/duskmantle/tavernsim/internal/repositories"
	"github.com/duskmantle/tavernsim/internal/repositories/postgres"
	"github.com/duskmantle/tavernsim/internal/tavern"
	"github.com/jaswdr/faker"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "tavernsim",
	Short: "Simulates a fantasy tavern's day-to-day service",
	Long: `tavernsim runs a tavern-management simulation headlessly: an
autoplaying keeper buys stock each morning, serves adventurers dish by
dish through a ticked day phase, and invests the takings each evening,
streaming every event for downstream analysis.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		if err := run(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func run(cfg *models.Config) error {
	ctx := context.Background()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	if cfg.TavernName == "" {
		fake := faker.NewWithSeed(rand.NewSource(seed))
		cfg.TavernName = fmt.Sprintf("The %s Tavern", fake.Company().Name())
	}

	var repo repositories.CatalogRepository
	if cfg.PostgresDSN != "" {
		pool, err := postgres.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			return err
		}
		defer pool.Close()
		repo = postgres.NewCatalogRepository(pool)
	}
	cat, err := catalog.Load(ctx, repo)
	if err != nil {
		return err
	}

	factory := factories.NewCustomerFactory(seed, cat.HeroNames)
	engine := tavern.NewEngine(rng, factory, cat)
	output := tavern.DetermineOutputDestination(cfg)
	tav := tavern.New(cfg, engine, cat, output)
	keeper := tavern.NewKeeper(cfg)

	var sink tavern.ReportSink
	if cfg.S3Bucket != "" {
		wf, err := cloudwriter.NewS3WriterFactory(ctx, cfg.S3Region)
		if err != nil {
			return err
		}
		sink = reports.NewCloudWriter(wf, cfg.S3Bucket)
	} else if cfg.ReportsFolder != "" {
		sink = reports.NewLocalWriter(cfg.ReportsFolder)
	}

	return tavern.Run(tav, keeper, sink)
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tavernsim.yaml)")

	rootCmd.Flags().Int64("seed", 42, "Random seed for the simulation (0 uses the clock)")
	rootCmd.Flags().Int("days", 7, "Number of in-game days to simulate")
	rootCmd.Flags().Duration("tick-rate", 100*time.Millisecond, "Wall-clock interval between day-phase ticks")
	rootCmd.Flags().String("tavern-name", "", "Tavern name used in the event stream")
	rootCmd.Flags().Int("initial-gold", models.InitialGold, "Starting gold")
	rootCmd.Flags().Int("initial-fame", models.InitialFame, "Starting fame")
	rootCmd.Flags().Int("initial-capacity", models.InitialCapacity, "Starting seating capacity")
	rootCmd.Flags().Bool("kafka-enabled", false, "Enable Kafka output")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.Flags().String("output-file", "", "Directory for per-topic event files (if not using Kafka)")
	rootCmd.Flags().String("reports-folder", "", "Directory for parquet day reports")
	rootCmd.Flags().String("s3-bucket", "", "S3 bucket for parquet day reports")
	rootCmd.Flags().String("s3-region", "eu-west-1", "S3 region for report uploads")
	rootCmd.Flags().String("postgres-dsn", "", "Postgres DSN for catalog loading (built-in catalog used when empty)")
	rootCmd.Flags().Int("restock-target", 10, "Stock level the keeper buys up to each morning")

	bindings := map[string]string{
		"seed":              "seed",
		"days":              "days",
		"tick_rate":         "tick-rate",
		"tavern_name":       "tavern-name",
		"initial_gold":      "initial-gold",
		"initial_fame":      "initial-fame",
		"initial_capacity":  "initial-capacity",
		"kafka_enabled":     "kafka-enabled",
		"kafka_broker_list": "kafka-broker-list",
		"output_file_path":  "output-file",
		"reports_folder":    "reports-folder",
		"s3_bucket":         "s3-bucket",
		"s3_region":         "s3-region",
		"postgres_dsn":      "postgres-dsn",
		"restock_target":    "restock-target",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, rootCmd.Flags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tavernsim")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
