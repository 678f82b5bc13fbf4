// Demo de línea de comandos del cliente SARC: login contra el backend
// (o el devserver local) y listado de lugares y eventos.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sarc-client/internal/adapters/storage/file"
	"sarc-client/internal/api"
	"sarc-client/internal/domain/eventos"
	"sarc-client/internal/domain/lugares"
	"sarc-client/internal/platform/httpclient"
	"sarc-client/internal/platform/logger"
	"sarc-client/internal/ports/credentials"
	"sarc-client/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "sarc:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		base  = flag.String("base", envOr("SARC_BASE_URL", "http://localhost:8080"), "URL base del backend")
		email = flag.String("email", "", "email para login (opcional si ya hay sesión)")
		senha = flag.String("senha", "", "contraseña para login")
		busca = flag.String("busca", "", "filtro de búsqueda de lugares")
	)
	flag.Parse()

	log := logger.NewFromEnv()

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	store, err := file.NewCredentialStore(filepath.Join(home, ".sarc", "credentials.json"))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	authClient, err := httpclient.New(httpclient.Config{
		BaseURL: *base + "/auth",
		Logger:  log,
	})
	if err != nil {
		return err
	}
	sess, err := session.New(session.Config{
		Service: authClient,
		Store:   store,
		Logger:  log,
	})
	if err != nil {
		return err
	}

	if *email != "" {
		if _, err := sess.Login(ctx, *email, *senha); err != nil {
			var apiErr *api.Erro
			if errors.As(err, &apiErr) {
				return fmt.Errorf("login rechazado: %s", apiErr.Mensagem())
			}
			return fmt.Errorf("login: %w", err)
		}
	} else if token, _ := sess.Token(ctx); token == "" {
		return errors.New("sin sesión: pasá -email y -senha")
	}

	apiClient, err := httpclient.New(httpclient.Config{
		BaseURL: *base,
		Tokens:  credentials.TokenSource(store),
		Logger:  log,
	})
	if err != nil {
		return err
	}

	lugaresSvc := lugares.NewService(apiClient)
	items, err := lugaresSvc.List(ctx, lugares.ListFilters{Busca: *busca})
	if err != nil {
		return fmt.Errorf("lugares: %w", err)
	}
	for _, l := range items {
		fmt.Printf("lugar %d: %s (%s)\n", l.ID, l.Nome, l.Categoria.Nome)
	}

	eventosSvc := eventos.NewService(apiClient)
	evs, err := eventosSvc.List(ctx, nil)
	if err != nil {
		return fmt.Errorf("eventos: %w", err)
	}
	for _, e := range evs {
		fmt.Printf("evento %d: %s @ %s (%s)\n", e.ID, e.Nome, e.Lugar.Nome, e.Data)
	}

	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
