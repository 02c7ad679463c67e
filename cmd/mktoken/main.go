// Command mktoken issues an HS256 admin bearer token for the content
// API, signed with the same secret the server reads from JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/jamalakbara/adana-sub001/pkg/sitecontent/api"
)

func main() {
	subject := flag.String("sub", "", "Subject claim for the token (required)")
	ttl := flag.Duration("ttl", 24*time.Hour, "Token lifetime")
	secret := flag.String("secret", "", "Signing secret (defaults to JWT_SECRET)")
	flag.Parse()

	_ = godotenv.Load()

	if *secret == "" {
		*secret = os.Getenv("JWT_SECRET")
	}
	if *secret == "" {
		log.Fatal("A signing secret is required: pass -secret or set JWT_SECRET")
	}
	if *subject == "" {
		log.Fatal("A subject is required: pass -sub")
	}

	authorizer := api.NewJWTAuthorizer([]byte(*secret))

	now := time.Now()
	_, tokenString, err := authorizer.TokenAuth().Encode(map[string]interface{}{
		"sub":  *subject,
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(*ttl).Unix(),
	})
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Println(tokenString)
}
