/*
 * Copyright © 2025 Pairbridge Labs, All rights reserved.
 */

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/pairbridge/tablestore"
	"github.com/pairbridge/tablestore/pairup"
	"github.com/pairbridge/tablestore/store/dynamo"
)

// config carries the connection settings for the backing table.
// Environment variables override the file; a missing file is fine
// as long as the environment provides the AWS credentials.
type config struct {
	AWS struct {
		Region    string `yaml:"region"`
		AccessKey string `yaml:"accessKey"`
		SecretKey string `yaml:"secretKey"`
	} `yaml:"aws"`
	Table       string `yaml:"table"`
	EnsureTable bool   `yaml:"ensureTable"`
	Verbose     bool   `yaml:"verbose"`
}

func loadConfig(path string) (*config, error) {
	_ = godotenv.Load()

	cfg := &config{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if v := os.Getenv("AWS_REGION"); v != "" {
		cfg.AWS.Region = v
	}
	if v := os.Getenv("AWS_ACCESS_KEY"); v != "" {
		cfg.AWS.AccessKey = v
	}
	if v := os.Getenv("AWS_SECRET_KEY"); v != "" {
		cfg.AWS.SecretKey = v
	}
	if v := os.Getenv("PAIRUP_TABLE"); v != "" {
		cfg.Table = v
	}
	if cfg.Table == "" {
		cfg.Table = "pairup"
	}
	return cfg, nil
}

// app bundles the stores a subcommand needs, built once per invocation.
type app struct {
	log   *zap.Logger
	teams *pairup.TeamStore
	users *pairup.UserStore
}

func newApp(ctx context.Context, cfgPath string) (*app, func(), error) {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return nil, nil, err
	}

	var log *zap.Logger
	if cfg.Verbose {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	cleanup := func() { _ = log.Sync() }

	client, err := dynamo.NewClient(ctx, cfg.AWS.AccessKey, cfg.AWS.SecretKey, cfg.AWS.Region)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create table client: %w", err)
	}

	teamAccessor, err := dynamo.New[pairup.TeamInfo](ctx, log, client, cfg.Table, pairup.TeamPartition, cfg.EnsureTable)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	userAccessor, err := dynamo.New[pairup.UserInfo](ctx, log, client, cfg.Table, pairup.UserPartition, false)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	// The registry keeps the accessors addressable by name so future
	// subcommands can look them up without re-plumbing constructors.
	reg := tablestore.NewRegistry()
	if err := tablestore.Register[pairup.TeamInfo](reg, "teams", teamAccessor); err != nil {
		cleanup()
		return nil, nil, err
	}
	if err := tablestore.Register[pairup.UserInfo](reg, "users", userAccessor); err != nil {
		cleanup()
		return nil, nil, err
	}

	teams, err := pairup.NewTeamStore(log, teamAccessor)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	users, err := pairup.NewUserStore(log, userAccessor)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return &app{log: log, teams: teams, users: users}, cleanup, nil
}
