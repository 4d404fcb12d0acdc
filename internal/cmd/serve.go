package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/chinook/internal/config"
	"github.com/renato0307/chinook/internal/logging"
	"github.com/renato0307/chinook/internal/server"
)

// ServeCmd serves the theme picker over SSH
type ServeCmd struct {
	AuthorizedKeys string `help:"Path to the authorized_keys file (defaults to ~/.ssh/authorized_keys)" type:"path"`
	Host           string `help:"Address to listen on (overrides settings ssh_host)"`
	Port           int    `help:"Port to listen on (overrides settings ssh_port)"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	host, port := cli.settings.SSHAddress()
	if s.Host != "" {
		host = s.Host
	}
	if s.Port != 0 {
		port = s.Port
	}

	logging.Logger.Info("Executing serve command", "host", host, "port", port)

	srv, err := server.NewServer(cli.Container.ThemeService, server.Options{
		AuthorizedKeysPath: s.AuthorizedKeys,
		Current:            cli.Container.SettingsService.SelectedThemeName(),
		Host:               host,
		Port:               port,
		SSHDir:             config.GetSSHDir(),
	})
	if err != nil {
		return err
	}

	fmt.Printf("SSH server listening on %s\n", srv.Address())
	return srv.Start(context.Background())
}
