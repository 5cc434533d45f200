package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) writeCmd(method string) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   method + " <endpoint>",
		Short: strings.ToUpper(method) + " a JSON body to a resource",
		Example: fmt.Sprintf(`  magento-cli %[1]s products --data '{"product":{"sku":"MB01","price":34}}'
  magento-cli %[1]s products --data @product.json`, method),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readBody(data, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return a.run(cmd, strings.ToUpper(method), args[0], nil, body)
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "JSON body, @file to read a file or @- for stdin")

	return cmd
}

func (a *app) deleteCmd() *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "delete <endpoint>",
		Short: "DELETE a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readBody(data, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return a.run(cmd, http.MethodDelete, args[0], nil, body)
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "optional JSON body, @file to read a file or @- for stdin")

	return cmd
}

// readBody decodes data as JSON. An empty string means no body.
func readBody(data string, stdin io.Reader) (any, error) {
	if data == "" {
		return nil, nil
	}

	raw := []byte(data)
	switch {
	case data == "@-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		raw = b
	case strings.HasPrefix(data, "@"):
		b, err := os.ReadFile(strings.TrimPrefix(data, "@"))
		if err != nil {
			return nil, fmt.Errorf("reading body file: %w", err)
		}
		raw = b
	}

	var body any
	if err := criteriaJSON.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("decoding --data: %w", err)
	}
	return body, nil
}
