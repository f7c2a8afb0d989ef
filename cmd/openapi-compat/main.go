// Package main checks that the generated SkillSwap API document stays
// backward compatible with a committed baseline.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"skillswap/docs"

	"gopkg.in/yaml.v3"
)

var httpMethods = map[string]struct{}{
	"get":    {},
	"put":    {},
	"post":   {},
	"delete": {},
	"patch":  {},
}

// routeSet maps "METHOD /path" to the documented response codes.
type routeSet map[string]map[string]struct{}

func main() {
	basePath := flag.String("base", "", "baseline swagger document (JSON or YAML)")
	revisionPath := flag.String("revision", "", "revision document; defaults to the compiled-in docs")
	write := flag.Bool("write", false, "overwrite -base with the compiled-in docs and exit")
	flag.Parse()

	if strings.TrimSpace(*basePath) == "" {
		fmt.Fprintln(os.Stderr, "usage: openapi-compat -base <path> [-revision <path>] [-write]")
		os.Exit(2)
	}

	if *write {
		// #nosec G306: the baseline is a committed, non-secret artifact
		if err := os.WriteFile(*basePath, []byte(docs.SwaggerInfo.ReadDoc()), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write baseline: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("baseline written to %s\n", *basePath)
		return
	}

	base, err := loadFile(*basePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load baseline: %v\n", err)
		os.Exit(1)
	}

	var revision routeSet
	if strings.TrimSpace(*revisionPath) == "" {
		revision, err = parseRoutes([]byte(docs.SwaggerInfo.ReadDoc()))
	} else {
		revision, err = loadFile(*revisionPath)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load revision: %v\n", err)
		os.Exit(1)
	}

	if issues := breakingChanges(base, revision); len(issues) > 0 {
		fmt.Fprintln(os.Stderr, "backward compatibility check failed:")
		for _, issue := range issues {
			fmt.Fprintf(os.Stderr, "- %s\n", issue)
		}
		os.Exit(1)
	}

	fmt.Println("openapi compatibility check passed")
}

func loadFile(path string) (routeSet, error) {
	// #nosec G304: path comes from CLI flags in a dev tool
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseRoutes(raw)
}

// parseRoutes accepts both the JSON emitted by swag and hand-edited YAML.
func parseRoutes(raw []byte) (routeSet, error) {
	var doc struct {
		Paths map[string]map[string]struct {
			Responses map[string]yaml.Node `yaml:"responses"`
		} `yaml:"paths"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if doc.Paths == nil {
		return nil, errors.New("missing top-level paths field")
	}

	routes := make(routeSet)
	for path, ops := range doc.Paths {
		for method, op := range ops {
			method = strings.ToLower(strings.TrimSpace(method))
			if _, ok := httpMethods[method]; !ok {
				continue
			}
			codes := make(map[string]struct{}, len(op.Responses))
			for code := range op.Responses {
				codes[strings.TrimSpace(code)] = struct{}{}
			}
			routes[strings.ToUpper(method)+" "+path] = codes
		}
	}
	return routes, nil
}

// breakingChanges lists routes and response codes present in base but gone
// from revision. Additions are always compatible.
func breakingChanges(base, revision routeSet) []string {
	var issues []string
	for route, codes := range base {
		revCodes, ok := revision[route]
		if !ok {
			issues = append(issues, "removed operation: "+route)
			continue
		}
		for code := range codes {
			if _, ok := revCodes[code]; !ok {
				issues = append(issues, fmt.Sprintf("removed response code: %s -> %s", route, code))
			}
		}
	}
	sort.Strings(issues)
	return issues
}
