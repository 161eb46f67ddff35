package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/footballhub/cli/internal/api"
	"github.com/footballhub/cli/internal/model"
	"github.com/footballhub/cli/internal/ui"
)

type trainerForm struct {
	Name        string `validate:"required,max=50"`
	Speciality  string `validate:"required"`
	Location    string `validate:"required"`
	PriceCash   int    `validate:"gte=0"`
	PricePoints int    `validate:"gte=0"`
}

var trainersCmd = &cobra.Command{
	Use:   "trainers",
	Short: "Browse and book trainers",
}

var trainersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all trainers",
	RunE: func(cmd *cobra.Command, _ []string) error {
		trainers, err := app.client.Trainers(cmd.Context())
		if err != nil {
			return fail(err)
		}
		renderTrainersTable(trainers)
		return nil
	},
}

var trainersSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search trainers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		trainers, err := app.client.SearchTrainers(cmd.Context(), args[0])
		if err != nil {
			return fail(err)
		}
		renderTrainersTable(trainers)
		return nil
	},
}

var trainersShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one trainer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := app.client.Trainer(cmd.Context(), args[0])
		if err != nil {
			return fail(err)
		}
		ui.Title(os.Stdout, t.Name)
		ui.Field(os.Stdout, "Speciality", t.Speciality)
		ui.Field(os.Stdout, "Location", t.Location)
		ui.Field(os.Stdout, "Price", ui.Itoa(t.PriceCash)+" cash / "+ui.Itoa(t.PricePoints)+" points")
		ui.Field(os.Stdout, "Rating", ui.Ftoa(t.RatingAvg))
		ui.Field(os.Stdout, "Owner", t.Owner)
		if !t.Available {
			ui.Dim(os.Stdout, "Currently unavailable")
		}
		return nil
	},
}

var trainersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "List a trainer you manage",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := requireLogin(); err != nil {
			return fail(err)
		}
		form := trainerForm{
			Name:        trainerName,
			Speciality:  trainerSpeciality,
			Location:    trainerLocation,
			PriceCash:   trainerCash,
			PricePoints: trainerPoints,
		}
		if err := checkForm(form); err != nil {
			return fail(err)
		}
		t, err := app.client.CreateTrainer(cmd.Context(), api.TrainerUpsert{
			Name:        form.Name,
			Speciality:  form.Speciality,
			Location:    form.Location,
			PriceCash:   form.PriceCash,
			PricePoints: form.PricePoints,
			Available:   true,
		})
		if err != nil {
			return fail(err)
		}
		ui.ToastOK(os.Stdout, "Trainer listed: "+t.ID)
		return nil
	},
}

var trainersEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a trainer you manage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return fail(err)
		}
		t, err := app.client.Trainer(cmd.Context(), args[0])
		if err != nil {
			return fail(err)
		}
		if t.Owner != app.sess.Player.Email {
			return fail(api.ErrForbidden)
		}
		upd := api.TrainerUpsert{
			ID:          t.ID,
			Name:        t.Name,
			Speciality:  t.Speciality,
			Location:    t.Location,
			PriceCash:   t.PriceCash,
			PricePoints: t.PricePoints,
			Available:   t.Available,
		}
		if trainerName != "" {
			upd.Name = trainerName
		}
		if trainerSpeciality != "" {
			upd.Speciality = trainerSpeciality
		}
		if trainerLocation != "" {
			upd.Location = trainerLocation
		}
		if trainerCash != 0 {
			upd.PriceCash = trainerCash
		}
		if trainerPoints != 0 {
			upd.PricePoints = trainerPoints
		}
		if trainerUnavailable {
			upd.Available = false
		}
		if _, err := app.client.UpdateTrainer(cmd.Context(), upd); err != nil {
			return fail(err)
		}
		ui.ToastOK(os.Stdout, "Trainer updated")
		return nil
	},
}

var trainersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a trainer listing you manage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return fail(err)
		}
		if err := app.client.DeleteTrainer(cmd.Context(), args[0]); err != nil {
			return fail(err)
		}
		ui.ToastOK(os.Stdout, "Trainer removed")
		return nil
	},
}

var trainersBookCmd = &cobra.Command{
	Use:   "book <id>",
	Short: "Request a session with a trainer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return fail(err)
		}
		err := app.client.BookTrainer(cmd.Context(), api.BookingRequest{
			TrainerID: args[0],
			Message:   bookMessage,
		})
		if err != nil {
			return fail(err)
		}
		ui.ToastOK(os.Stdout, "Training request sent, the owner will confirm")
		return nil
	},
}

func renderTrainersTable(trainers []model.Trainer) {
	rows := make([][]string, len(trainers))
	for i, t := range trainers {
		avail := "yes"
		if !t.Available {
			avail = "no"
		}
		rows[i] = []string{t.Name, t.ID, t.Speciality, t.Location, ui.Itoa(t.PricePoints), ui.Ftoa(t.RatingAvg), avail}
	}
	ui.Table(os.Stdout, []string{"Name", "ID", "Speciality", "Location", "Points", "Rating", "Available"}, rows)
}

var (
	trainerName, trainerSpeciality, trainerLocation string
	trainerCash, trainerPoints                      int
	trainerUnavailable                              bool
	bookMessage                                     string
)

func init() {
	for _, c := range []*cobra.Command{trainersCreateCmd, trainersEditCmd} {
		c.Flags().StringVar(&trainerName, "name", "", "trainer name")
		c.Flags().StringVar(&trainerSpeciality, "speciality", "", "speciality")
		c.Flags().StringVar(&trainerLocation, "location", "", "location")
		c.Flags().IntVar(&trainerCash, "cash", 0, "price in cash")
		c.Flags().IntVar(&trainerPoints, "points", 0, "price in points")
	}
	trainersEditCmd.Flags().BoolVar(&trainerUnavailable, "unavailable", false, "mark the trainer unavailable")
	trainersBookCmd.Flags().StringVar(&bookMessage, "message", "", "note to the owner")

	trainersCmd.AddCommand(trainersListCmd, trainersSearchCmd, trainersShowCmd, trainersCreateCmd, trainersEditCmd, trainersDeleteCmd, trainersBookCmd)
	rootCmd.AddCommand(trainersCmd)
}
