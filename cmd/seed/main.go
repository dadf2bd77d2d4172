package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"zones/cmd"
	"zones/internal/adapters/out/postgres"
	"zones/internal/adapters/out/postgres/tenantrepo"
	"zones/internal/adapters/out/postgres/zonerepo"
	"zones/internal/core/application/usecases/commands"
	"zones/internal/seeds"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := openDatabase(configs)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)

	var zoneUoWFactory commands.ZoneUoWFactory = cmd.FuncZoneUoWFactory(func() commands.ZoneUoW {
		return uowFactory.Create()
	})
	replaceZones := commands.NewReplaceZonesCommandHandler(zoneUoWFactory)

	seeder := seeds.NewSeeder(uowFactory, replaceZones, logger)
	if err = seeder.Apply(context.Background()); err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	logger.Info("seeding completed")
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err = gormDB.AutoMigrate(&tenantrepo.TenantDTO{}, &zonerepo.ZoneDTO{}); err != nil {
		return nil, err
	}

	return gormDB, nil
}
