// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	servicefinder "github.com/poiesic/servicefinder"
	"github.com/poiesic/servicefinder/acronym"
	"github.com/poiesic/servicefinder/ai"
	"github.com/poiesic/servicefinder/auth"
	"github.com/poiesic/servicefinder/core"
	"github.com/poiesic/servicefinder/httpapi"
	"github.com/poiesic/servicefinder/reindex"
	"github.com/poiesic/servicefinder/storage"
)

// openFinder builds a Finder from the common flags.
func openFinder(ctx context.Context, c *cli.Context, extra ...servicefinder.FinderOption) (*servicefinder.Finder, error) {
	dictionary, err := acronym.Load(c.String("acronyms"))
	if err != nil {
		return nil, fmt.Errorf("failed to load acronym dictionary: %w", err)
	}

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithDimension(c.Int("dimension")),
		ai.WithExplainerHost(c.String("llm-host")),
		ai.WithExplainerModel(c.String("llm-model")),
	)

	opts := []servicefinder.FinderOption{servicefinder.WithAIConfig(aiConfig)}
	if c.Bool("openai-embedding") {
		opts = append(opts, servicefinder.WithOpenAIEmbedding())
	}
	switch backend := c.String("vector-backend"); backend {
	case "memory":
	case "qdrant":
		opts = append(opts, servicefinder.WithQdrant(
			c.String("qdrant-host"), c.Int("qdrant-port"), c.String("qdrant-collection")))
	default:
		return nil, fmt.Errorf("unknown vector backend %q: must be memory or qdrant", backend)
	}
	opts = append(opts, extra...)

	return servicefinder.NewFinder(ctx, c.String("db"), dictionary, opts...)
}

func serveCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	finder, err := openFinder(ctx, c)
	if err != nil {
		return fmt.Errorf("failed to open service finder: %w", err)
	}
	defer finder.Close()

	api := httpapi.New(
		finder.Searcher(),
		finder.Explainer(),
		finder.Writer(),
		finder.Stores().Services,
		finder.Stores().Organizations,
		finder.Stores().Users,
		finder.Sessions(),
		httpapi.WithAuditLog(finder.AuditLog()),
	)

	server := &http.Server{
		Addr:              c.String("listen"),
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		fmt.Fprintf(os.Stderr, "Listening on %s\n", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

func reindexCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The reconciler only embeds; no LLM needed.
	finder, err := openFinder(ctx, c, servicefinder.WithoutExplainer())
	if err != nil {
		return fmt.Errorf("failed to open service finder: %w", err)
	}
	defer finder.Close()

	config := &reindex.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
		PoolSize:       c.Int("pool-size"),
	}
	if config.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if config.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	reconciler, err := finder.NewReconciler(config)
	if err != nil {
		return fmt.Errorf("failed to create reconciler: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("embedding-host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	stats, err := reconciler.Run(ctx, os.Stderr)
	if err != nil {
		return fmt.Errorf("reindexing failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Scanned %d services, refreshed %d, failed %d\n",
		stats.Scanned, stats.Refreshed, stats.Failed)
	return nil
}

// catalogFile is the shape of the seed JSON file.
type catalogFile struct {
	Organizations []*core.Organization `json:"organizations"`
	Services      []*core.Service      `json:"services"`
}

func seedCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	data, err := os.ReadFile(c.String("file"))
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}
	var catalog catalogFile
	if err := json.Unmarshal(data, &catalog); err != nil {
		return fmt.Errorf("failed to parse catalog file: %w", err)
	}

	finder, err := openFinder(ctx, c, servicefinder.WithoutExplainer())
	if err != nil {
		return fmt.Errorf("failed to open service finder: %w", err)
	}
	defer finder.Close()

	for _, org := range catalog.Organizations {
		if err := finder.Stores().Organizations.PutOrganization(ctx, org); err != nil {
			return fmt.Errorf("failed to store organization %s: %w", org.Code, err)
		}
	}
	fmt.Fprintf(os.Stderr, "Stored %d organizations\n", len(catalog.Organizations))

	// The write path computes aliases and embeddings; seeding as superadmin
	// bypasses org scoping.
	actor := auth.Actor{Email: "seed", SuperAdmin: true}
	writer := finder.Writer()
	seeded := 0
	for _, service := range catalog.Services {
		_, _, err := writer.Create(ctx, actor, service)
		if errors.Is(err, storage.ErrDuplicateKey) ||
			errors.Is(err, core.ErrValidation) || errors.Is(err, core.ErrDependency) {
			fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", service.Id, err)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to seed service %s: %w", service.Id, err)
		}
		seeded++
	}
	fmt.Fprintf(os.Stderr, "Seeded %d services\n", seeded)

	email := strings.TrimSpace(c.String("admin-email"))
	if email != "" {
		password := c.String("admin-password")
		if password == "" {
			return fmt.Errorf("admin-password is required with admin-email")
		}
		hash, err := auth.HashPassword(password)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		user := &core.User{
			Id:                  uuid.NewString(),
			Email:               email,
			PasswordHash:        hash,
			SuperAdmin:          true,
			ForcePasswordChange: true,
		}
		if err := finder.Stores().Users.PutUser(ctx, user); err != nil {
			return fmt.Errorf("failed to create superadmin: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Created superadmin %s\n", email)
	}

	return nil
}
