package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Activos-api/pkg/jwt"
)

// newTokenCmd firma un token de desarrollo con JWT_SECRET. Solo sirve cuando
// el cliente comparte el secreto con la API (entornos locales).
func newTokenCmd(a *app) *cobra.Command {
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "token USUARIO_ID",
		Short: "Firmar un token de desarrollo (requiere JWT_SECRET)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if a.cfg.JWT.Secret == "" {
				return errors.New("JWT_SECRET no está definido")
			}
			tok, err := jwt.Generate(a.cfg.JWT.Secret, args[0], a.cfg.JWT.Issuer, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, tok)
			return nil
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "vigencia del token")
	return cmd
}
