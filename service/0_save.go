package service

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fulldump/apitest"
)

// Save writes a markdown example of the request and its response into
// $API_EXAMPLES_PATH. Nothing is written when the variable is empty.
func Save(response *apitest.Response, title, description string) {

	examplesPath := os.Getenv("API_EXAMPLES_PATH")
	if examplesPath == "" {
		return
	}

	request := response.Request

	query := request.URL.RawQuery
	if query != "" {
		query = "?" + query
	}
	requestBody := formatJSON(response.BodyRequestString())

	s := &strings.Builder{}

	s.WriteString("# " + title + "\n")
	s.WriteString(mdDescription(description) + "\n")

	s.WriteString("Curl example:\n\n```sh\n")
	method := ""
	if request.Method != "GET" {
		method = "-X " + request.Method + " "
	}
	s.WriteString("curl " + method + "\"https://example.com" + request.URL.Path + query + "\"")
	for _, k := range sortedKeys(request.Header) {
		for _, v := range request.Header[k] {
			s.WriteString(" \\\n-H \"" + k + ": " + v + "\"")
		}
	}
	if requestBody != "" {
		s.WriteString(" \\\n-d '" + requestBody + "'")
	}
	s.WriteString("\n```\n\n\n")

	s.WriteString("HTTP request/response example:\n\n```http\n")
	s.WriteString(request.Method + " " + request.URL.Path + query + " " + request.Proto + "\n")
	s.WriteString("Host: example.com\n")
	for _, k := range sortedKeys(request.Header) {
		for _, v := range request.Header[k] {
			s.WriteString(k + ": " + v + "\n")
		}
	}
	s.WriteString("\n" + requestBody + "\n\n")

	s.WriteString(response.Proto + " " + response.Status + "\n")
	for _, k := range sortedKeys(response.Header) {
		if k == "Date" || k == "X-Request-Id" {
			continue
		}
		for _, v := range response.Header[k] {
			s.WriteString(k + ": " + v + "\n")
		}
	}
	s.WriteString("\n" + formatJSON(response.BodyString()) + "\n```\n")

	filename := strings.ReplaceAll(title, " ", "_") + ".md"
	p := filepath.Join(examplesPath, filepath.Clean(filename))
	err := os.WriteFile(p, []byte(s.String()), 0666)
	if err != nil {
		log.Println("ERROR: save api example:", err.Error())
	}
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func formatJSON(body string) string {

	var i interface{}
	err := json.Unmarshal([]byte(body), &i)
	if err != nil {
		return body
	}

	b, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		return body
	}

	return string(b)
}

// mdDescription removes the common tab indentation of a raw string literal
// and turns ´´´ into code fences.
func mdDescription(d string) string {
	lines := strings.Split(strings.Trim(d, "\n"), "\n")

	minTabs := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, "\t"))
		if minTabs < 0 || n < minTabs {
			minTabs = n
		}
	}
	if minTabs > 0 {
		prefix := strings.Repeat("\t", minTabs)
		for i, line := range lines {
			lines[i] = strings.TrimPrefix(line, prefix)
		}
	}

	d = strings.Join(lines, "\n")
	d = strings.ReplaceAll(d, "´´´", "```")
	d = strings.ReplaceAll(d, "´", "`")
	return d
}
