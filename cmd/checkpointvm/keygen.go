package checkpointvm

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-checkpointvm/codec"
	"github.com/spacemeshos/go-checkpointvm/common/types"
	"github.com/spacemeshos/go-checkpointvm/signing"
)

func (a *app) keygenCmd() *cobra.Command {
	var out string
	c := &cobra.Command{
		Use:   "keygen",
		Short: "generate secp256k1 admin key",
		Long: "Generates secp256k1 key and prints its identity. " +
			"Key is written to the file if --out is set, otherwise it is printed.",
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			opts := []signing.SignerOptionFunc{signing.WithFs(a.fs)}
			if out != "" {
				opts = append(opts, signing.ToFile(out))
			}
			signer, err := signing.NewSecp256k1Signer(opts...)
			if err != nil {
				return fmt.Errorf("generate key: %w", err)
			}
			id := signer.Identity()
			a.logger.Info("generated key", zap.Object("identity", &id), zap.String("file", out))

			w := c.OutOrStdout()
			if out == "" {
				fmt.Fprintf(w, "private key: %s\n", hex.EncodeToString(signer.PrivateKey()))
			}
			fmt.Fprintf(w, "public key: %s\n", types.HexBytes(signer.PublicKey()))
			fmt.Fprintf(w, "identity: %s\n", types.HexBytes(codec.MustEncode(&id)))
			return nil
		},
	}
	c.Flags().StringVarP(&out, "out", "o", "", "write hex encoded private key to the file, existing file is not overwritten")
	return c
}
