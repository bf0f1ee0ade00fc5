package main

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	resultado "github.com/RickStanley/Resultado"
	"github.com/RickStanley/Resultado/pkg/pointer"
	"github.com/RickStanley/Resultado/pkg/problem"
	"github.com/RickStanley/Resultado/pkg/schema"
)

// --- Schema ---

var userSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "name": { "type": "string", "minLength": 1 },
    "email": { "type": "string" }
  },
  "required": ["name", "email"]
}`

// User is the request payload for the create-user endpoint.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

var resolver = pointer.NewResolver(pointer.WithNamingPolicy(pointer.CamelCase))

// emailPointer names the email field in problem reports; resolving it from
// the type keeps it in sync with the struct's json tags.
var emailPointer = resolver.Resolve(pointer.Root[User]().Field("Email")).String()

// createUser validates the request body twice: structurally against the JSON
// schema, then against a business rule. Either failure becomes an RFC 7807
// response; success is echoed back with a 201.
func createUser(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		f := resultado.Fail("could not read request body", resultado.WithError(err))
		writeProblem(w, r, f)
		return
	}

	res, err := schema.Validate(schema.NewStringLoader(userSchema), schema.NewBytesLoader(body))
	if f, failed := schema.FailIfInvalid(res, err); failed {
		writeProblem(w, r, f)
		return
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		f := resultado.Fail("invalid JSON body", resultado.WithError(err), resultado.WithKind(resultado.KindInvalid))
		writeProblem(w, r, f)
		return
	}

	if !strings.Contains(user.Email, "@") {
		f := resultado.FailValidation("user is invalid",
			resultado.NewValidationError("email must contain an @",
				resultado.WithPointer(emailPointer),
				resultado.WithCode("EMAIL_FORMAT"),
			))
		writeProblem(w, r, f)
		return
	}

	outcome := resultado.Succeed(user, resultado.WithSuccessKind(resultado.KindCreated))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(outcome.Kind().HTTPStatus())
	if err := json.NewEncoder(w).Encode(outcome); err != nil {
		log.Printf("ERROR: encoding response: %v", err)
	}
}

func writeProblem(w http.ResponseWriter, r *http.Request, f resultado.Failure) {
	rep := problem.FromFailure(f, problem.WithInstance(r.URL.Path))
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(rep.Status)
	if err := json.NewEncoder(w).Encode(rep); err != nil {
		log.Printf("ERROR: encoding problem report: %v", err)
	}
}

func main() {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /users", createUser)

	log.Printf("🚀 listening on :8080 — try: curl -d '{\"name\":\"miku\"}' localhost:8080/users")
	if err := http.ListenAndServe(":8080", mux); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
