// response/error.go
// This package turns non-2xx store responses into structured errors.
package response

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
	"github.com/spf13/cast"
	"golang.org/x/net/html"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// APIError represents an error response returned by the store.
type APIError struct {
	StatusCode  int      `json:"status_code"`      // HTTP status code
	Method      string   `json:"method"`           // HTTP method used for the request
	URL         string   `json:"url"`              // The URL of the HTTP request
	Errors      []Errors `json:"errors,omitempty"` // Individual errors, Magento 1.x reports several
	Message     string   `json:"message"`          // Summary of the error
	Trace       string   `json:"trace,omitempty"`  // Server stack trace when developer mode is on
	RawResponse string   `json:"raw_response"`     // Raw response body for debugging
}

// Errors is one error entry within an API error response.
type Errors struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// Error returns a string representation of the APIError, making it compatible with the error interface.
func (e *APIError) Error() string {
	message := e.Message
	if message == "" {
		message = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("magento API error: %s %s: %d: %s", e.Method, e.URL, e.StatusCode, message)
}

// ParseAPIError reads and closes resp.Body and decodes the error envelope for its content type.
func ParseAPIError(resp *http.Response) *APIError {
	apiError := &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}
	if resp.Request != nil {
		apiError.Method = resp.Request.Method
		apiError.URL = resp.Request.URL.String()
	}

	defer resp.Body.Close()
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		apiError.RawResponse = "Failed to read response body"
		return apiError
	}
	apiError.RawResponse = string(bodyBytes)
	if len(bytes.TrimSpace(bodyBytes)) == 0 {
		return apiError
	}

	mimeType, _ := ParseContentTypeHeader(resp.Header.Get("Content-Type"))
	switch mimeType {
	case "application/json":
		parseJSONResponse(bodyBytes, apiError)
	case "application/xml", "text/xml":
		parseXMLResponse(bodyBytes, apiError)
	case "text/html":
		parseHTMLResponse(bodyBytes, apiError)
	default:
		parseTextResponse(bodyBytes, apiError)
	}
	return apiError
}

// storeJSONError covers both generations: Magento 2.x sends message and parameters at the top level
// and Magento 1.x nests a list under messages.error.
type storeJSONError struct {
	Message    string              `json:"message"`
	Parameters jsoniter.RawMessage `json:"parameters"`
	Trace      string              `json:"trace"`
	Errors     []struct {
		Message    string              `json:"message"`
		Parameters jsoniter.RawMessage `json:"parameters"`
	} `json:"errors"`
	Messages struct {
		Error []struct {
			Code    any    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	} `json:"messages"`
}

func parseJSONResponse(bodyBytes []byte, apiError *APIError) {
	var body storeJSONError
	if err := json.Unmarshal(bodyBytes, &body); err != nil {
		return
	}

	apiError.Trace = body.Trace
	if body.Message != "" {
		apiError.Message = RenderMessage(body.Message, body.Parameters)
	}
	for _, e := range body.Errors {
		apiError.Errors = append(apiError.Errors, Errors{Message: RenderMessage(e.Message, e.Parameters)})
	}
	for _, e := range body.Messages.Error {
		apiError.Errors = append(apiError.Errors, Errors{Code: cast.ToString(e.Code), Message: e.Message})
	}
	if body.Message == "" && len(apiError.Errors) > 0 {
		apiError.Message = joinMessages(apiError.Errors)
	}
}

// parseXMLResponse reads the Magento 1.x envelope:
// <magento_api><messages><error><data_item><code/><message/></data_item></error></messages></magento_api>.
// Other XML documents fall back to their concatenated text.
func parseXMLResponse(bodyBytes []byte, apiError *APIError) {
	doc, err := xmlquery.Parse(bytes.NewReader(bodyBytes))
	if err != nil {
		return
	}

	for _, item := range xmlquery.Find(doc, "//messages/error/data_item") {
		e := Errors{}
		if code := item.SelectElement("code"); code != nil {
			e.Code = strings.TrimSpace(code.InnerText())
		}
		if message := item.SelectElement("message"); message != nil {
			e.Message = strings.TrimSpace(message.InnerText())
		}
		apiError.Errors = append(apiError.Errors, e)
	}
	if len(apiError.Errors) > 0 {
		apiError.Message = joinMessages(apiError.Errors)
		return
	}

	var messages []string
	var traverse func(*xmlquery.Node)
	traverse = func(n *xmlquery.Node) {
		if n.Type == xmlquery.TextNode && strings.TrimSpace(n.Data) != "" {
			messages = append(messages, strings.TrimSpace(n.Data))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(doc)

	if len(messages) > 0 {
		apiError.Message = strings.Join(messages, "; ")
	}
}

func parseTextResponse(bodyBytes []byte, apiError *APIError) {
	apiError.Message = strings.TrimSpace(string(bodyBytes))
}

// parseHTMLResponse uses the page title, or the text of its <p> elements, as the message.
// Proxies and maintenance pages in front of a store answer in HTML.
func parseHTMLResponse(bodyBytes []byte, apiError *APIError) {
	doc, err := html.Parse(bytes.NewReader(bodyBytes))
	if err != nil {
		return
	}

	var title string
	var paragraphs []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				title = strings.TrimSpace(textContent(n))
			case "p":
				if text := strings.Join(strings.Fields(textContent(n)), " "); text != "" {
					paragraphs = append(paragraphs, text)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	switch {
	case len(paragraphs) > 0:
		apiError.Message = strings.Join(paragraphs, "; ")
	case title != "":
		apiError.Message = title
	}
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func joinMessages(errs []Errors) string {
	messages := lo.FilterMap(errs, func(e Errors, _ int) (string, bool) {
		return e.Message, e.Message != ""
	})
	return strings.Join(messages, "; ")
}

// RenderMessage substitutes Magento 2.x placeholders in message. parameters is either a list, whose
// entries fill %1, %2 and so on, or an object whose keys fill %name. Unknown placeholders are kept.
func RenderMessage(message string, parameters jsoniter.RawMessage) string {
	if len(parameters) == 0 || !strings.Contains(message, "%") {
		return message
	}

	var list []any
	if err := json.Unmarshal(parameters, &list); err == nil {
		replacements := make(map[string]string, len(list))
		for i, p := range list {
			replacements[strconv.Itoa(i+1)] = cast.ToString(p)
		}
		return substitute(message, replacements)
	}

	var named map[string]any
	if err := json.Unmarshal(parameters, &named); err == nil {
		replacements := make(map[string]string, len(named))
		for k, v := range named {
			replacements[k] = cast.ToString(v)
		}
		return substitute(message, replacements)
	}
	return message
}

// substitute matches longer placeholders first: %10 before %1.
func substitute(message string, replacements map[string]string) string {
	keys := lo.Keys(replacements)
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	oldnew := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		oldnew = append(oldnew, "%"+k, replacements[k])
	}
	return strings.NewReplacer(oldnew...).Replace(message)
}
