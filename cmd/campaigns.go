package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"direct-ads/internal/core/domain"
)

var campaignsCmd = &cobra.Command{
	Use:   "campaigns [id...]",
	Short: "List campaigns with their local metadata",
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app) error {
			campaigns, err := a.svc.ListCampaigns(ctx, ids)
			if err != nil {
				return err
			}
			if campaigns == nil {
				campaigns = []domain.Campaign{}
			}
			return printJSON(cmd, campaigns)
		})
	},
}

var chooseCmd = &cobra.Command{
	Use:   "choose <id>",
	Short: "Mark a campaign as chosen and assign its domain",
	Long: `Stores the chosen flag and domain of a campaign. Omitting --domain
clears the domain; --chosen=false excludes the campaign from domain
switching and billing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid campaign id %q", args[0])
		}
		chosen, _ := cmd.Flags().GetBool("chosen")
		var domainName *string
		if cmd.Flags().Changed("domain") {
			name, _ := cmd.Flags().GetString("domain")
			domainName = &name
		}
		return withApp(cmd, func(ctx context.Context, a *app) error {
			return a.svc.SetCampaignChosen(ctx, id, chosen, domainName)
		})
	},
}

var domainCmd = &cobra.Command{
	Use:       "domain <name> on|off|status",
	Short:     "Switch or inspect all chosen campaigns of a domain",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"on", "off", "status"},
	RunE: func(cmd *cobra.Command, args []string) error {
		name, action := args[0], strings.ToLower(args[1])
		return withApp(cmd, func(ctx context.Context, a *app) error {
			switch action {
			case "on", "off":
				res := a.svc.SetDomainState(ctx, name, action == "on")
				if res.Failed() {
					return res.Err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "domain %q is %s\n", name, action)
				return nil
			case "status":
				res := a.svc.IsDomainOff(ctx, name)
				if res.Failed() {
					logger.Warn("domain state unknown, assuming off")
				}
				state := "on"
				if res.Value {
					state = "off"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "domain %q is %s\n", name, state)
				return nil
			default:
				return fmt.Errorf("unknown action %q, want on, off or status", action)
			}
		})
	},
}

func init() {
	chooseCmd.Flags().Bool("chosen", true, "include the campaign in domain switching and billing")
	chooseCmd.Flags().String("domain", "", "domain the campaign belongs to")
}

func parseIDs(args []string) ([]int64, error) {
	var ids []int64
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			if part = strings.TrimSpace(part); part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid campaign id %q", part)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}
