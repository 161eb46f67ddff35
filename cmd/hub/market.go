package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/footballhub/cli/internal/api"
	"github.com/footballhub/cli/internal/model"
	"github.com/footballhub/cli/internal/ui"
)

type itemForm struct {
	Name        string `validate:"required,max=80"`
	Description string `validate:"required"`
	PriceCash   int    `validate:"gte=0"`
	PricePoints int    `validate:"gte=0"`
}

var marketCmd = &cobra.Command{
	Use:   "store",
	Short: "Browse and trade on the player store",
}

var marketListCmd = &cobra.Command{
	Use:   "list",
	Short: "List items for sale",
	RunE: func(cmd *cobra.Command, _ []string) error {
		items, err := app.client.Items(cmd.Context())
		if err != nil {
			return fail(err)
		}
		renderItemsTable(items)
		return nil
	},
}

var marketSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search store items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := app.client.SearchItems(cmd.Context(), args[0])
		if err != nil {
			return fail(err)
		}
		renderItemsTable(items)
		return nil
	},
}

var marketMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List your own items",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := requireLogin(); err != nil {
			return fail(err)
		}
		items, err := app.client.ItemsByOwner(cmd.Context(), app.sess.Player.Email)
		if err != nil {
			return fail(err)
		}
		renderItemsTable(items)
		return nil
	},
}

var marketSellCmd = &cobra.Command{
	Use:   "sell",
	Short: "List an item for sale",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := requireLogin(); err != nil {
			return fail(err)
		}
		form := itemForm{
			Name:        itemName,
			Description: itemDescription,
			PriceCash:   itemCash,
			PricePoints: itemPoints,
		}
		if err := checkForm(form); err != nil {
			return fail(err)
		}
		item, err := app.client.SellItem(cmd.Context(), api.ItemUpsert{
			Name:        form.Name,
			Description: form.Description,
			ImageURL:    itemImage,
			PriceCash:   form.PriceCash,
			PricePoints: form.PricePoints,
		})
		if err != nil {
			return fail(err)
		}
		ui.ToastOK(os.Stdout, "Item listed: "+item.ID)
		return nil
	},
}

var marketDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove one of your listings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return fail(err)
		}
		if err := app.client.DeleteItem(cmd.Context(), args[0]); err != nil {
			return fail(err)
		}
		ui.ToastOK(os.Stdout, "Listing removed")
		return nil
	},
}

var marketBuyCmd = &cobra.Command{
	Use:   "buy <id>",
	Short: "Send a purchase request to the owner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return fail(err)
		}
		err := app.client.BuyItem(cmd.Context(), api.PurchaseRequest{
			ItemID:  args[0],
			Message: buyMessage,
		})
		if err != nil {
			return fail(err)
		}
		ui.ToastOK(os.Stdout, "Purchase request sent, the owner will confirm")
		return nil
	},
}

func renderItemsTable(items []model.StoreItem) {
	rows := make([][]string, len(items))
	for i, it := range items {
		status := "for sale"
		if it.Sold {
			status = "sold"
		}
		rows[i] = []string{it.Name, it.ID, it.Owner, ui.Itoa(it.PriceCash), ui.Itoa(it.PricePoints), status}
	}
	ui.Table(os.Stdout, []string{"Item", "ID", "Owner", "Cash", "Points", "Status"}, rows)
}

var (
	itemName, itemDescription, itemImage string
	itemCash, itemPoints                 int
	buyMessage                           string
)

func init() {
	marketSellCmd.Flags().StringVar(&itemName, "name", "", "item name")
	marketSellCmd.Flags().StringVar(&itemDescription, "description", "", "item description")
	marketSellCmd.Flags().StringVar(&itemImage, "image", "", "image URL")
	marketSellCmd.Flags().IntVar(&itemCash, "cash", 0, "price in cash")
	marketSellCmd.Flags().IntVar(&itemPoints, "points", 0, "price in points")
	marketBuyCmd.Flags().StringVar(&buyMessage, "message", "", "note to the owner")

	marketCmd.AddCommand(marketListCmd, marketSearchCmd, marketMineCmd, marketSellCmd, marketDeleteCmd, marketBuyCmd)
	rootCmd.AddCommand(marketCmd)
}
