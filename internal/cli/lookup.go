package cli

import (
	"fmt"
	"net"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvkit/color"
	"github.com/katalvlaran/lvkit/email"
	"github.com/katalvlaran/lvkit/geo"
	"github.com/katalvlaran/lvkit/phone"
)

func colorCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "color HEX|NAME",
		Short: "Describe a colour: formats, nearest name, contrast",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := color.ParseHex(args[0])
			if err != nil {
				named, nerr := color.Lookup(args[0])
				if nerr != nil {
					return err
				}
				c = named
			}
			h, s, l := c.HSL()
			name, dist := color.Name(c)
			white, black := color.MustHex("#fff"), color.MustHex("#000")
			printf(cmd, "hex       %s\n", c.Hex())
			printf(cmd, "rgb       %s\n", c.RGBString())
			printf(cmd, "hsl       %.0f, %.0f%%, %.0f%%\n", h, s*100, l*100)
			printf(cmd, "name      %s (ΔE %.2f)\n", name, dist)
			printf(cmd, "contrast  %.2f on white, %.2f on black\n", color.Contrast(c, white), color.Contrast(c, black))
			printf(cmd, "dark      %t\n", c.IsDark())
			return nil
		},
	}
}

func distanceCmd(_ *app) *cobra.Command {
	var unit string
	var vincenty bool
	cmd := &cobra.Command{
		Use:   "distance FROM TO",
		Short: "Great-circle distance and bearing between two \"lat,lon\" points",
		Example: `  lvkit distance 51.5074,-0.1278 48.8566,2.3522 --unit mi
  # a leading minus needs "--" so it is not read as a flag
  lvkit distance --unit m -- -37.9510,144.4249 -37.6528,143.9265`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := geo.ParseLatLong(args[0])
			if err != nil {
				return err
			}
			to, err := geo.ParseLatLong(args[1])
			if err != nil {
				return err
			}
			u, err := geo.ParseUnit(unit)
			if err != nil {
				return err
			}
			d := geo.Haversine(from, to)
			if vincenty {
				if d, err = geo.Vincenty(from, to); err != nil {
					return err
				}
			}
			printf(cmd, "%.3f %s\n", d.In(u), u)
			printf(cmd, "bearing   %.2f°\n", geo.Bearing(from, to))
			printf(cmd, "midpoint  %s\n", geo.Midpoint(from, to))
			return nil
		},
	}
	cmd.Flags().StringVarP(&unit, "unit", "u", "km", "m, km, mi, nmi, ft or yd")
	cmd.Flags().BoolVar(&vincenty, "vincenty", false, "use the WGS-84 ellipsoid instead of a sphere")
	return cmd
}

func phoneCmd(a *app) *cobra.Command {
	var region, format string
	cmd := &cobra.Command{
		Use:   "phone NUMBER",
		Short: "Validate and format a phone number",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if region == "" {
				region = a.cfg.Region
			}
			f, err := phoneFormat(format)
			if err != nil {
				return err
			}
			n, err := phone.Parse(strings.Join(args, " "), region)
			if err != nil {
				return err
			}
			printf(cmd, "%s\n", n.Format(f))
			printf(cmd, "valid     %t\n", n.IsValid())
			printf(cmd, "region    %s\n", n.Region())
			printf(cmd, "type      %s\n", n.Type())
			return nil
		},
	}
	cmd.Flags().StringVarP(&region, "region", "r", "", "default region for national numbers (default LVKIT_PHONE_REGION)")
	cmd.Flags().StringVarP(&format, "format", "f", "international", "e164, international, national or rfc3966")
	return cmd
}

func phoneFormat(s string) (phone.Format, error) {
	switch strings.ToLower(s) {
	case "e164":
		return phone.E164, nil
	case "international", "intl":
		return phone.International, nil
	case "national":
		return phone.National, nil
	case "rfc3966", "tel":
		return phone.RFC3966, nil
	}
	return 0, fmt.Errorf("unknown phone format %q", s)
}

func emailCmd(a *app) *cobra.Command {
	var checkMX bool
	cmd := &cobra.Command{
		Use:   "email ADDRESS",
		Short: "Validate and normalise an email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			norm, err := email.Normalize(args[0])
			if err != nil {
				return err
			}
			printf(cmd, "%s\n", norm)
			printf(cmd, "disposable  %t\n", email.IsDisposable(norm))
			if checkMX {
				ctx, cancel := a.context(cmd)
				defer cancel()
				if err := email.ValidateDomain(ctx, norm, net.DefaultResolver); err != nil {
					return err
				}
				printf(cmd, "deliverable domain\n")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&checkMX, "mx", false, "check that the domain accepts mail (DNS lookup)")
	return cmd
}
