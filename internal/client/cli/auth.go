package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/agroconnect/agroconnect-cli/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for the phone number and password and authenticates. The
// session service reports success or failure to the user and moves the
// current route to the role's landing page.
func (a *App) Login(ctx context.Context) error {
	telephone, err := getSimpleText(a.reader, "Numéro de téléphone", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	return a.session.Login(ctx, telephone, string(password))
}

// Register collects the account fields and creates a farmer or buyer
// account. A successful registration logs the user straight in.
func (a *App) Register(ctx context.Context) error {
	prenom, err := getSimpleText(a.reader, "Prénom", os.Stdout)
	if err != nil {
		return err
	}
	nom, err := getSimpleText(a.reader, "Nom", os.Stdout)
	if err != nil {
		return err
	}
	telephone, err := getSimpleText(a.reader, "Numéro de téléphone", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email (optionnel)", os.Stdout)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Type de compte (agriculteur/acheteur)", os.Stdout)
	if err != nil {
		return err
	}
	if !models.Role(role).Valid() {
		printlnFn("Type de compte invalide")
		return fmt.Errorf("unknown account type %q", role)
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	return a.session.Register(ctx, models.RegisterRequest{
		Prenom:          prenom,
		Nom:             nom,
		Telephone:       telephone,
		Email:           email,
		MotDePasse:      string(password),
		TypeUtilisateur: models.Role(role),
	})
}

// Logout ends the session; safe to call when not logged in.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	return nil
}

// Whoami prints the current profile and, when the token carries an exp
// claim, the session's expiry time.
func (a *App) Whoami(ctx context.Context) error {
	u := a.session.CurrentUser()
	if u == nil {
		printlnFn("Non connecté.")
		return nil
	}

	printlnFn(fmt.Sprintf("%s %s (%s)", u.Prenom, u.Nom, u.TypeUtilisateur))
	printlnFn("Téléphone :", u.Telephone)
	if u.Email != "" {
		printlnFn("Email :", u.Email)
	}
	if u.Localisation != nil && u.Localisation.Region != "" {
		printlnFn("Région :", u.Localisation.Region)
	}
	if exp, ok := a.session.TokenExpiry(ctx); ok {
		printlnFn("Session valable jusqu'au", formatDate(time.Unix(exp, 0)))
	}
	return nil
}

// EditProfile prompts for the editable fields and submits them. Empty
// answers keep the current value.
func (a *App) EditProfile(ctx context.Context) error {
	u := a.session.CurrentUser()
	if u == nil {
		printlnFn("Non connecté.")
		return nil
	}

	prenom, err := getSimpleText(a.reader, fmt.Sprintf("Prénom [%s]", u.Prenom), os.Stdout)
	if err != nil {
		return err
	}
	nom, err := getSimpleText(a.reader, fmt.Sprintf("Nom [%s]", u.Nom), os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, fmt.Sprintf("Email [%s]", u.Email), os.Stdout)
	if err != nil {
		return err
	}
	region, err := getSimpleText(a.reader, "Région", os.Stdout)
	if err != nil {
		return err
	}

	upd := models.ProfileUpdate{Prenom: prenom, Nom: nom, Email: email}
	if region != "" {
		upd.Localisation = &models.Localisation{Region: region}
	}

	return a.session.UpdateProfile(ctx, upd)
}
