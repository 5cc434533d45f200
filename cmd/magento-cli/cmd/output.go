package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/deploymenttheory/go-api-magento-client/apiintegrations/magento"
	"github.com/deploymenttheory/go-api-magento-client/httpclient"
	"github.com/deploymenttheory/go-api-magento-client/response"
	"github.com/deploymenttheory/go-api-magento-client/status"
	"github.com/spf13/cobra"
)

// run sends one request and prints the response body. A non-2xx status is rendered from the store's
// error envelope and returned as the command error.
func (a *app) run(cmd *cobra.Command, method, endpoint string, params magento.SearchCriteria, body any) error {
	client, err := a.newClient()
	if err != nil {
		return err
	}

	if a.dryRun {
		desc, err := client.Describe(method, endpoint, params, body)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", desc.Method, desc.ResolvedURL)
		if len(desc.Body) > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), string(desc.Body))
		}
		return nil
	}

	var pending *httpclient.PendingResponse
	ctx := cmd.Context()
	switch method {
	case http.MethodGet:
		pending = client.Get(ctx, endpoint, params)
	case http.MethodPost:
		pending = client.Post(ctx, endpoint, body)
	case http.MethodPut:
		pending = client.Put(ctx, endpoint, body)
	default:
		pending = client.Delete(ctx, endpoint, body)
	}

	resp, err := pending.Await(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.ErrOrStderr(), status.TranslateStatusCode(resp.StatusCode))
	if !status.IsSuccessStatusCode(resp.StatusCode) {
		return response.ParseAPIError(resp)
	}

	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	return writePayload(cmd.OutOrStdout(), payload)
}

func writePayload(w io.Writer, payload []byte) error {
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, payload, "", "  "); err != nil {
		_, err = fmt.Fprintln(w, strings.TrimRight(string(payload), "\n"))
		return err
	}
	_, err := fmt.Fprintln(w, pretty.String())
	return err
}
