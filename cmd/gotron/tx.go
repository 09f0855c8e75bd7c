package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wangbaolong/gotron/types"
)

var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "Derive transaction identifiers",
}

var txIDCmd = &cobra.Command{
	Use:   "id <raw-data-hex>",
	Short: "Derive a transaction id from canonical raw-data bytes",
	Long: `Derive a transaction id from the hex-encoded canonical encoding of
its raw data. The id is the SHA-256 digest of those bytes; signatures and
results never contribute to it.

Example:
  gotron tx id 0a02a4b1...`,
	Args: cobra.ExactArgs(1),
	RunE: runTxID,
}

func init() {
	txCmd.AddCommand(txIDCmd)
}

func runTxID(cmd *cobra.Command, args []string) error {
	raw, err := parseHexArg(args[0])
	if err != nil {
		return err
	}
	fmt.Println(types.Sum(raw))
	return nil
}

// parseHexArg decodes a hex argument with an optional 0x/0X prefix.
func parseHexArg(s string) ([]byte, error) {
	trimmed := s
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		trimmed = s[2:]
	}
	raw, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", s, types.ErrMalformedHex)
	}
	return raw, nil
}
