package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mediai-platform/mediai/authclient"
	"github.com/mediai-platform/mediai/intake"
	"github.com/mediai-platform/mediai/internal/config"
	"github.com/mediai-platform/mediai/session"
)

func runCommand(verb string, args []string, cfg *config.Config, mgr *session.Manager) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	switch verb {
	case "login":
		return cmdLogin(ctx, args, mgr)
	case "logout":
		return cmdLogout(mgr)
	case "register":
		return cmdRegister(ctx, args, mgr)
	case "register-patient":
		return cmdRegisterPatient(ctx, args, mgr)
	case "whoami":
		return cmdWhoami(mgr)
	case "dashboard":
		return cmdDashboard(ctx, mgr)
	case "diagnose":
		return cmdDiagnose(args)
	default:
		usage()
		return fmt.Errorf("unknown command %q", verb)
	}
}

func cmdLogin(ctx context.Context, args []string, mgr *session.Manager) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	remember := fs.Bool("remember", false, "remember the username for the next login")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := mgr.Login(ctx, *username, *password, *remember); err != nil {
		return err
	}
	fmt.Println("Logged in.")
	return nil
}

func cmdLogout(mgr *session.Manager) error {
	mgr.Logout("")
	fmt.Println("Successfully logged out.")
	return nil
}

func cmdRegister(ctx context.Context, args []string, mgr *session.Manager) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	form := authclient.DoctorForm{}
	fs.StringVar(&form.Username, "u", "", "username")
	fs.StringVar(&form.Password, "p", "", "password")
	fs.StringVar(&form.ConfirmPassword, "confirm", "", "password confirmation")
	fs.StringVar(&form.Email, "email", "", "email address")
	fs.StringVar(&form.FullName, "name", "", "full name")
	fs.StringVar(&form.Specialty, "specialty", "", "medical specialty")
	fs.StringVar(&form.LicenseNumber, "license", "", "license number")
	fs.StringVar(&form.Hospital, "hospital", "", "hospital")
	fs.StringVar(&form.Phone, "phone", "", "phone number")
	fs.StringVar(&form.Address, "address", "", "address")
	fs.StringVar(&form.YearsExperience, "experience", "", "years of experience")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := mgr.Auth().RegisterDoctor(ctx, form); err != nil {
		return describeFieldErrors(err)
	}
	fmt.Println("Registration successful.")
	return nil
}

func cmdRegisterPatient(ctx context.Context, args []string, mgr *session.Manager) error {
	fs := flag.NewFlagSet("register-patient", flag.ExitOnError)
	form := authclient.PatientForm{}
	fs.StringVar(&form.Username, "u", "", "username")
	fs.StringVar(&form.Email, "email", "", "email address")
	fs.StringVar(&form.Password, "p", "", "password")
	fs.StringVar(&form.ConfirmPassword, "confirm", "", "password confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := mgr.Auth().RegisterPatient(ctx, form); err != nil {
		return describeFieldErrors(err)
	}
	fmt.Println("Registration successful.")
	return nil
}

func describeFieldErrors(err error) error {
	var fields authclient.FieldErrors
	if !stderrors.As(err, &fields) {
		return err
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("  %s: %s", k, fields[k]))
	}
	return fmt.Errorf("registration rejected:\n%s", strings.Join(lines, "\n"))
}

// cmdWhoami dumps the stored access token's claims without verifying the
// signature; the backend holds the signing key, not this client.
func cmdWhoami(mgr *session.Manager) error {
	access, ok := mgr.Auth().AccessToken()
	if !ok {
		return fmt.Errorf("not logged in")
	}

	token, _, err := jwt.NewParser().ParseUnverified(access, jwt.MapClaims{})
	if err != nil {
		return fmt.Errorf("parse access token: %w", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return fmt.Errorf("unexpected claims type")
	}

	keys := make([]string, 0, len(claims))
	for k := range claims {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s: %v\n", k, claims[k])
	}
	if user, ok := mgr.Auth().RememberedUser(); ok {
		fmt.Printf("remembered username: %s\n", user)
	}
	return nil
}

func cmdDashboard(ctx context.Context, mgr *session.Manager) error {
	profile, err := mgr.Auth().Dashboard(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s\nspecialty: %s\nemail: %s\n", profile.Message, profile.Specialty, profile.Email)
	return nil
}

func cmdDiagnose(args []string) error {
	fs := flag.NewFlagSet("diagnose", flag.ExitOnError)
	symptoms := fs.String("symptoms", "", "comma-separated symptoms")
	duration := fs.String("duration", "", "how long, e.g. \"1-2 days\"")
	severity := fs.String("severity", "", "mild, moderate, severe or emergency")
	if err := fs.Parse(args); err != nil {
		return err
	}

	analyzer := intake.NewAnalyzer()
	fmt.Println("Analyzing symptoms...")
	diag, err := analyzer.Analyze(context.Background(), intake.Draft{
		FreeText: *symptoms,
		Duration: *duration,
		Severity: *severity,
	})
	if err != nil {
		return err
	}

	fmt.Println("\nPossible conditions:")
	for _, c := range diag.Conditions {
		fmt.Printf("  %-16s %3.0f%%  (%s severity)\n", c.Name, c.Confidence*100, c.Severity)
	}
	fmt.Println("\nRecommendations:")
	for _, rec := range diag.Recommendations {
		fmt.Printf("  - %s\n", rec)
	}
	fmt.Printf("\n%s\n", diag.Notes)
	return nil
}
