package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/footballhub/cli/internal/api"
	"github.com/footballhub/cli/internal/ui"
)

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type signupForm struct {
	Email    string `validate:"required,email"`
	Name     string `validate:"required,max=50"`
	Password string `validate:"required,min=6"`
	Position string `validate:"required,oneof=goalkeeper defender midfielder forward"`
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and persist the session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		form := loginForm{
			Email:    loginEmail,
			Password: loginPassword,
		}
		if err := checkForm(form); err != nil {
			return fail(err)
		}
		p, err := app.client.Login(cmd.Context(), api.Credentials{Email: form.Email, Password: form.Password})
		if err != nil {
			return fail(err)
		}
		app.sess.SetPlayer(p)
		ui.ToastOK(os.Stdout, "Logged in as "+p.Name)
		return nil
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a player account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		form := signupForm{
			Email:    signupEmail,
			Name:     signupName,
			Password: signupPassword,
			Position: signupPosition,
		}
		if err := checkForm(form); err != nil {
			return fail(err)
		}
		skills, err := parseKeyIntPairs(signupSkills, "skill")
		if err != nil {
			return fail(err)
		}
		p, err := app.client.Signup(cmd.Context(), api.SignupRequest{
			Email:    form.Email,
			Name:     form.Name,
			Password: form.Password,
			Position: form.Position,
			Skills:   skills,
		})
		if err != nil {
			return fail(err)
		}
		app.sess.SetPlayer(p)
		ui.ToastOK(os.Stdout, "Welcome to Football Hub, "+p.Name)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the local session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := app.sess.Clear(cmd.Context()); err != nil {
			// Local state is wiped either way; the toast covers the server.
			ui.ToastWarn(os.Stdout, "Server logout failed, local session cleared")
			return nil
		}
		ui.ToastOK(os.Stdout, "Logged out")
		return nil
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or manage your profile",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := requireLogin(); err != nil {
			return fail(err)
		}
		renderPlayer(app.sess.Player)
		return nil
	},
}

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit your profile",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := requireLogin(); err != nil {
			return fail(err)
		}
		skills, err := parseKeyIntPairs(profileSkills, "skill")
		if err != nil {
			return fail(err)
		}
		p, err := app.client.UpdateProfile(cmd.Context(), api.ProfileUpdate{
			Name:     profileName,
			Position: profilePosition,
			Skills:   skills,
		})
		if err != nil {
			return fail(err)
		}
		app.sess.SetPlayer(p)
		ui.ToastOK(os.Stdout, "Profile updated")
		return nil
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete your account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := requireLogin(); err != nil {
			return fail(err)
		}
		if !confirmDelete {
			ui.ToastWarn(os.Stdout, "Re-run with --yes to confirm account deletion")
			return nil
		}
		if err := app.client.DeleteProfile(cmd.Context()); err != nil {
			return fail(err)
		}
		_ = app.sess.Clear(cmd.Context())
		ui.ToastOK(os.Stdout, "Account deleted")
		return nil
	},
}

var (
	loginEmail, loginPassword               string
	signupEmail, signupName, signupPassword string
	signupPosition                          string
	signupSkills                            []string
	profileName, profilePosition            string
	profileSkills                           []string
	confirmDelete                           bool
)

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password")

	signupCmd.Flags().StringVar(&signupEmail, "email", "", "account email")
	signupCmd.Flags().StringVar(&signupName, "name", "", "display name")
	signupCmd.Flags().StringVar(&signupPassword, "password", "", "account password")
	signupCmd.Flags().StringVar(&signupPosition, "position", "", "playing position")
	signupCmd.Flags().StringArrayVar(&signupSkills, "skill", nil, "skill attribute, e.g. --skill shooting=80")

	profileEditCmd.Flags().StringVar(&profileName, "name", "", "display name")
	profileEditCmd.Flags().StringVar(&profilePosition, "position", "", "playing position")
	profileEditCmd.Flags().StringArrayVar(&profileSkills, "skill", nil, "skill attribute, e.g. --skill passing=70")
	profileDeleteCmd.Flags().BoolVar(&confirmDelete, "yes", false, "confirm deletion")

	profileCmd.AddCommand(profileEditCmd, profileDeleteCmd)
	rootCmd.AddCommand(loginCmd, signupCmd, logoutCmd, profileCmd)
}
