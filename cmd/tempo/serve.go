package main

import (
	"github.com/spf13/cobra"

	"github.com/benhorvath/tempo-tfidf/internal/server"
	"github.com/benhorvath/tempo-tfidf/pkg/tempo/config"
)

func serveCmd() *cobra.Command {
	var (
		cfgPath string
		addr    string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP report server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Address = addr
			}

			st, err := openArchive(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			srv, err := server.New(cfg, st)
			if err != nil {
				return err
			}
			return srv.Run()
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "config file (default searches . and ./config)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.address)")
	return cmd
}
