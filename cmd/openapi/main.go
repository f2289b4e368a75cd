// openapi builds, validates, and serves the OpenAPI 3 description of the
// advisor HTTP API.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gorilla/mux"
	"gopkg.in/yaml.v3"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: openapi <command>")
		fmt.Println("Commands:")
		fmt.Println("  serve    - Serve OpenAPI documentation with Swagger UI")
		fmt.Println("  validate - Validate the OpenAPI specification")
		fmt.Println("  export   - Print the specification (json or yaml)")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		serveDocumentation()
	case "validate":
		validateSpec()
	case "export":
		exportSpec()
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}

// buildSpec constructs the advisor API specification programmatically so it
// cannot drift from a hand-edited file.
func buildSpec() *openapi3.T {
	taskRequest := openapi3.NewObjectSchema().
		WithProperty("task", openapi3.NewStringSchema().WithMinLength(3))
	taskRequest.Required = []string{"task"}

	spec := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "Claude Setup Advisor API",
			Description: "Analyzes task descriptions and recommends Claude Code features.",
			Version:     "1.0.0",
		},
		Paths: openapi3.NewPaths(),
	}

	jsonBody := func(schema *openapi3.Schema) *openapi3.RequestBodyRef {
		return &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().
				WithRequired(true).
				WithJSONSchema(schema),
		}
	}
	jsonResponse := func(description string) *openapi3.Responses {
		responses := openapi3.NewResponses()
		responses.Set("200", &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription(description).
				WithJSONSchema(openapi3.NewObjectSchema()),
		})
		responses.Set("400", &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Validation failure").
				WithJSONSchema(openapi3.NewObjectSchema()),
		})
		return responses
	}

	spec.Paths.Set("/api/v1/analyze", &openapi3.PathItem{
		Post: &openapi3.Operation{
			OperationID: "analyzeTask",
			Summary:     "Full task analysis and feature recommendations",
			RequestBody: jsonBody(taskRequest),
			Responses:   jsonResponse("Ranked recommendations with analysis summary"),
		},
	})
	spec.Paths.Set("/api/v1/analyze/quick", &openapi3.PathItem{
		Post: &openapi3.Operation{
			OperationID: "quickAnalyze",
			Summary:     "Truncated analysis for incremental feedback",
			RequestBody: jsonBody(taskRequest),
			Responses:   jsonResponse("Keywords, top categories, and complexity"),
		},
	})
	spec.Paths.Set("/api/v1/categories", &openapi3.PathItem{
		Get: &openapi3.Operation{
			OperationID: "listCategories",
			Summary:     "List task categories",
			Responses:   jsonResponse("Category catalog"),
		},
	})
	spec.Paths.Set("/api/v1/features", &openapi3.PathItem{
		Get: &openapi3.Operation{
			OperationID: "listFeatures",
			Summary:     "List all features grouped by type",
			Responses:   jsonResponse("Feature catalog"),
		},
	})
	spec.Paths.Set("/api/v1/features/search", &openapi3.PathItem{
		Get: &openapi3.Operation{
			OperationID: "searchFeatures",
			Summary:     "Search the feature catalog",
			Parameters: openapi3.Parameters{
				&openapi3.ParameterRef{
					Value: openapi3.NewQueryParameter("q").
						WithRequired(true).
						WithSchema(openapi3.NewStringSchema()),
				},
			},
			Responses: jsonResponse("Scored search results, capped at 20"),
		},
	})
	spec.Paths.Set("/api/v1/features/{type}", &openapi3.PathItem{
		Get: &openapi3.Operation{
			OperationID: "listFeaturesByType",
			Summary:     "List one feature type's catalog",
			Parameters: openapi3.Parameters{
				&openapi3.ParameterRef{
					Value: openapi3.NewPathParameter("type").
						WithSchema(openapi3.NewStringSchema()),
				},
			},
			Responses: jsonResponse("Feature list for the type"),
		},
	})
	spec.Paths.Set("/api/v1/features/{type}/{id}", &openapi3.PathItem{
		Get: &openapi3.Operation{
			OperationID: "getFeature",
			Summary:     "Look a feature up by type and id",
			Parameters: openapi3.Parameters{
				&openapi3.ParameterRef{
					Value: openapi3.NewPathParameter("type").
						WithSchema(openapi3.NewStringSchema()),
				},
				&openapi3.ParameterRef{
					Value: openapi3.NewPathParameter("id").
						WithSchema(openapi3.NewStringSchema()),
				},
			},
			Responses: jsonResponse("Feature details"),
		},
	})
	spec.Paths.Set("/health", &openapi3.PathItem{
		Get: &openapi3.Operation{
			OperationID: "health",
			Summary:     "Server and catalog health",
			Responses:   jsonResponse("Health status"),
		},
	})

	return spec
}

func validateSpec() {
	spec := buildSpec()
	if err := spec.Validate(context.Background()); err != nil {
		fmt.Printf("Specification is invalid: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Specification is valid.")
}

func exportSpec() {
	spec := buildSpec()

	format := "yaml"
	if len(os.Args) > 2 {
		format = os.Args[2]
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(spec, "", "  ")
		if err != nil {
			fmt.Printf("Failed to marshal spec: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(spec)
		if err != nil {
			fmt.Printf("Failed to marshal spec: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(string(data))
	default:
		fmt.Printf("Unknown format: %s (use json or yaml)\n", format)
		os.Exit(1)
	}
}

func serveDocumentation() {
	router := mux.NewRouter()

	router.HandleFunc("/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(buildSpec())
	})

	router.HandleFunc("/docs", func(w http.ResponseWriter, r *http.Request) {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Claude Setup Advisor API Documentation</title>
    <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@4/swagger-ui.css">
</head>
<body>
    <div id="swagger-ui"></div>
    <script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
        window.onload = function() {
            SwaggerUIBundle({ url: "/openapi.json", dom_id: "#swagger-ui" });
        }
    </script>
</body>
</html>`
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(html))
	})

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs", http.StatusTemporaryRedirect)
	})

	port := os.Getenv("OPENAPI_PORT")
	if port == "" {
		port = "8081"
	}

	fmt.Printf("Serving OpenAPI documentation at http://localhost:%s/docs\n", port)
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		fmt.Printf("Server failed: %v\n", err)
		os.Exit(1)
	}
}
