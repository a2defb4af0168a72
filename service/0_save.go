package service

import (
	"encoding/json"
	"log"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/fulldump/apitest"
)

// Save writes a markdown page with a curl example and the raw HTTP exchange
// of resp into API_EXAMPLES_PATH. It does nothing when the variable is empty.
func Save(resp *apitest.Response, title, description string) {

	dir := os.Getenv("API_EXAMPLES_PATH")
	if dir == "" {
		return
	}

	req := resp.Request
	target := req.URL.Path
	if req.URL.RawQuery != "" {
		target += "?" + req.URL.RawQuery
	}
	requestBody := formatJSON(resp.BodyRequestString())

	md := &strings.Builder{}
	md.WriteString("# " + title + "\n")
	md.WriteString(cropTabs(description) + "\n")

	md.WriteString("Curl example:\n\n```sh\ncurl ")
	if req.Method != "GET" {
		md.WriteString("-X " + req.Method + " ")
	}
	md.WriteString(`"https://example.com` + target + `"`)
	for _, k := range sortedKeys(req.Header) {
		for _, v := range req.Header[k] {
			md.WriteString(" \\\n-H \"" + k + ": " + v + "\"")
		}
	}
	if requestBody != "" {
		md.WriteString(" \\\n-d '" + requestBody + "'")
	}
	md.WriteString("\n```\n\n\n")

	md.WriteString("HTTP request/response example:\n\n```http\n")
	md.WriteString(req.Method + " " + target + " " + req.Proto + "\n")
	md.WriteString("Host: example.com\n")
	for _, k := range sortedKeys(req.Header) {
		for _, v := range req.Header[k] {
			md.WriteString(k + ": " + v + "\n")
		}
	}
	md.WriteString("\n" + requestBody + "\n\n")

	md.WriteString(resp.Proto + " " + resp.Status + "\n")
	for _, k := range sortedKeys(resp.Header) {
		switch k {
		case "Date":
			md.WriteString("Date: Mon, 15 Aug 2022 02:08:13 GMT\n")
		case "X-Request-Id":
			md.WriteString("X-Request-Id: 00000000-0000-0000-0000-000000000000\n")
		default:
			for _, v := range resp.Header[k] {
				md.WriteString(k + ": " + v + "\n")
			}
		}
	}
	md.WriteString("\n" + formatJSON(resp.BodyString()) + "\n```\n\n\n")

	filename := strings.ReplaceAll(strings.ToLower(title), " ", "_") + ".md"
	p := path.Join(dir, path.Clean(filename))
	log.Println("Saving", p)
	err := os.WriteFile(p, []byte(md.String()), 0666)
	if err != nil {
		log.Println("ERROR: save example:", err.Error())
	}
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatJSON(body string) string {

	var i interface{}
	if err := json.Unmarshal([]byte(body), &i); err != nil {
		return body
	}

	b, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		return body
	}

	return string(b)
}

// cropTabs removes the common tab indentation of a raw string literal
// written inside a test.
func cropTabs(d string) string {

	lines := strings.Split(d, "\n")

	inner := lines
	if len(lines) > 2 {
		inner = lines[1 : len(lines)-1]
	}

	min := -1
	for _, line := range inner {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, "\t"))
		if min < 0 || n < min {
			min = n
		}
	}
	if min <= 0 {
		return d
	}

	prefix := strings.Repeat("\t", min)
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, prefix)
	}

	return strings.Join(lines, "\n")
}
