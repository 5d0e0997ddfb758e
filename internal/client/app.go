// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the terminal client: configuration, the server
// adapter, and the TUI loop.
package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/skillfade/internal/adapter"
	"github.com/MKhiriev/skillfade/internal/config"
	"github.com/MKhiriev/skillfade/internal/logger"
	"github.com/MKhiriev/skillfade/internal/tui"
)

type App struct {
	server adapter.ServerAdapter
	tui    *tui.TUI
	logger *logger.Logger
}

func NewApp(logger *logger.Logger) (*App, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("load client config: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	ui, err := tui.New(serverAdapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create tui: %w", err)
	}

	return &App{server: serverAdapter, tui: ui, logger: logger}, nil
}

// Run drives the client session: the login flow first, then the main loop.
// A logout from the main loop restarts the whole flow with a fresh login.
func (a *App) Run() error {
	ctx := context.Background()

	userID, err := a.tui.LoginFlow(ctx)
	if err != nil {
		return err
	}

	logout, err := a.tui.MainLoop(ctx, userID)
	if err != nil {
		return err
	}
	if logout {
		return a.Run()
	}

	return nil
}
