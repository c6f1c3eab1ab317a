package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/lizTheDeveloper/solarpunk-utopia-project-sub001/pkg/auth"
)

func main() {
	// Load .env from project root
	_ = godotenv.Load("../.env")

	if len(os.Args) < 2 {
		fmt.Println("Usage: go run invitegen.go <handle>")
		os.Exit(1)
	}

	handle := os.Args[1]
	if os.Getenv("INVITE_SECRET") == "" {
		fmt.Println("Error: INVITE_SECRET not found in .env")
		os.Exit(1)
	}

	code := auth.GenerateInviteCode(handle)
	fmt.Printf("Invite code for %s:\n%s\n", handle, code)
}
