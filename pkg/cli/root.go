// Package cli provides the navmenu command line interface.
package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mchmarny/navmenu/pkg/config"
	"github.com/mchmarny/navmenu/pkg/logger"
	"github.com/mchmarny/navmenu/pkg/menu"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const appName = "navmenu"

// BuildInfo is stamped into the binary at build time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

type app struct {
	info    BuildInfo
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
}

// NewRootCommand returns the navmenu command tree.
func NewRootCommand(info BuildInfo) *cobra.Command {
	a := &app{info: info, v: config.New()}

	root := &cobra.Command{
		Use:           appName,
		Short:         "Build navigation menus from YAML and render them as HTML",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			logger.SetDefaultLoggerWithLevel(appName, info.Version, cfg.LogLevel)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	pf.StringP(config.KeyMenuFile, "f", "menu.yaml", "menu definition file")
	pf.String(config.KeyLogLevel, "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		a.renderCommand(),
		a.listCommand(),
		a.serveCommand(),
		a.versionCommand(),
	)

	return root
}

func (a *app) renderCommand() *cobra.Command {
	var attrs []string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the menu as HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := menu.LoadFile(a.cfg.MenuFile)
			if err != nil {
				return err
			}

			outer, err := parseAttrFlags(attrs)
			if err != nil {
				return err
			}

			out, err := b.As(menu.Kind(a.cfg.Kind), outer)
			if err != nil {
				return fmt.Errorf("failed to render menu: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringP(config.KeyKind, "k", "ul", "outer element (ul, ol, div)")
	cmd.Flags().StringArrayVarP(&attrs, "attr", "a", nil, "outer element attribute as name=value, or a bare name")
	return cmd
}

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the flat item table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := menu.LoadFile(a.cfg.MenuFile)
			if err != nil {
				return err
			}
			return writeTable(cmd.OutOrStdout(), b)
		},
	}
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit %s, built %s)\n",
				appName, a.info.Version, a.info.Commit, a.info.Date)
			return err
		},
	}
}

func writeTable(w io.Writer, b *menu.Builder) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPARENT\tTITLE\tURL")
	for _, it := range b.Items() {
		l := it.Link()
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", it.ID(), it.ParentID(), l.Text, l.URL)
	}
	return tw.Flush()
}

// parseAttrFlags turns name=value pairs into attributes. A value without
// "=" is a bare flag attribute.
func parseAttrFlags(vals []string) (menu.Attributes, error) {
	out := make(menu.Attributes, 0, len(vals))
	for _, v := range vals {
		name, value, ok := strings.Cut(v, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("invalid attribute %q", v)
		}
		if !ok {
			out = append(out, menu.Flag(name))
			continue
		}
		out = append(out, menu.A(name, value))
	}
	return out, nil
}
