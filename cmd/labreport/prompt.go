package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"labreport/internal/credentials"
	"labreport/internal/models"
	"labreport/internal/sheet"
)

var stdin = bufio.NewReader(os.Stdin)

func readLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// confirm requires a literal "yes"; anything else declines.
func confirm(prompt string) bool {
	answer, err := readLine(prompt)
	if err != nil {
		return false
	}
	return strings.EqualFold(answer, "yes")
}

func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(secret), nil
}

// chooseModule lists the grading workbook's sheets and asks for one.
func chooseModule(path string) (string, error) {
	modules, err := sheet.Modules(path)
	if err != nil {
		return "", err
	}
	if len(modules) == 0 {
		return "", fmt.Errorf("grading workbook %s has no sheets", path)
	}

	fmt.Println("\nAvailable modules:")
	for i, m := range modules {
		fmt.Printf("%d. %s\n", i+1, m)
	}
	answer, err := readLine(fmt.Sprintf("\nSelect module number (1-%d): ", len(modules)))
	if err != nil {
		return "", err
	}
	for i, m := range modules {
		if answer == fmt.Sprint(i+1) || strings.EqualFold(answer, m) {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid module selection %q", answer)
}

// promptCredentials walks the first-time SMTP setup: provider, account
// address, hidden password.
func promptCredentials() (models.Credentials, error) {
	fmt.Println("\nEmail configuration:")
	fmt.Println("1. Gmail (smtp.gmail.com)")
	fmt.Println("2. Outlook (smtp-mail.outlook.com)")

	choice, err := readLine("Select email provider (1-2): ")
	if err != nil {
		return models.Credentials{}, err
	}

	creds := models.Credentials{Port: 587}
	switch choice {
	case "1":
		creds.Host = "smtp.gmail.com"
	case "2":
		creds.Host = "smtp-mail.outlook.com"
	default:
		return models.Credentials{}, fmt.Errorf("invalid provider choice %q", choice)
	}

	if creds.Email, err = readLine("Your email address: "); err != nil {
		return models.Credentials{}, err
	}
	if creds.Password, err = readPassword("Your email password (or app password): "); err != nil {
		return models.Credentials{}, err
	}
	return creds, nil
}

// loadOrSetupCredentials uses the saved account when one exists and
// runs first-time setup (saving the result) when it does not.
func loadOrSetupCredentials(store credentials.Store) (models.Credentials, error) {
	creds, ok, err := store.Load()
	if err != nil {
		return models.Credentials{}, err
	}
	if ok {
		fmt.Printf("\nUsing saved credentials: %s\n", creds.Email)
		return creds, nil
	}

	fmt.Println("\n[No saved credentials found - first time setup]")
	creds, err = promptCredentials()
	if err != nil {
		return models.Credentials{}, err
	}
	if err := store.Save(creds); err != nil {
		return models.Credentials{}, err
	}
	fmt.Println("Credentials saved!")
	return creds, nil
}
