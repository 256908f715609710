package main

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/born-ml/bornffi/internal/device"
	"github.com/born-ml/bornffi/internal/random"
	"github.com/born-ml/bornffi/internal/scalar"
	"github.com/born-ml/bornffi/internal/shim"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Born ML Framework %s\n", version)
		},
	}
}

func newDevicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List detected compute devices",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cuda available:  %t\n", shim.CUDAIsAvailable())
			fmt.Fprintf(out, "cuda devices:    %d\n", shim.CUDADeviceCount())
			fmt.Fprintf(out, "cudnn available: %t\n", shim.CuDNNIsAvailable())
			for _, d := range device.Default().All() {
				fmt.Fprintf(out, "  [%s:%d] %s\n", d.Kind, d.Index, d.Name)
			}
		},
	}
}

func newSeedCmd() *cobra.Command {
	var (
		draws int
		dist  string
	)
	cmd := &cobra.Command{
		Use:   "seed <seed>",
		Short: "Seed the default generator and print draws",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid seed %q: %w", args[0], err)
			}
			shim.ManualSeed(seed)

			g := random.Default()
			out := cmd.OutOrStdout()
			for i := 0; i < draws; i++ {
				switch dist {
				case "uniform":
					fmt.Fprintln(out, g.Float64())
				case "normal":
					fmt.Fprintln(out, g.Normal(0, 1))
				case "bits":
					fmt.Fprintln(out, g.Uint64())
				default:
					return fmt.Errorf("unknown distribution %q", dist)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&draws, "draws", "n", 3, "number of values to draw")
	cmd.Flags().StringVar(&dist, "dist", "uniform", "uniform, normal or bits")
	return cmd
}

func newScalarCmd() *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "scalar <kind> <value>",
		Short: "Box a value through the boundary and read it back",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := scalar.ParseKind(args[0])
			if err != nil {
				return err
			}
			target := from
			if to != "" {
				if target, err = scalar.ParseKind(to); err != nil {
					return err
				}
			}

			s, err := scalar.Parse(from, args[1])
			if err != nil {
				return err
			}

			// The error slot is per OS thread.
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()

			h := box(s)
			defer shim.DisposeScalar(h)

			result := unbox(h, target)
			if msg, ok := shim.GetAndResetLastErr(); ok {
				return errors.New(msg)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s %s\n", from, s, target, result)
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "kind to read the scalar back as (default: same kind)")
	return cmd
}

// box hands s to the boundary through the constructor of its own kind.
func box(s scalar.Scalar) uintptr {
	switch s.Kind() {
	case scalar.Int8:
		v, _ := s.ToInt8()
		return shim.Int8ToScalar(v)
	case scalar.Int16:
		v, _ := s.ToInt16()
		return shim.Int16ToScalar(v)
	case scalar.Int32:
		v, _ := s.ToInt32()
		return shim.Int32ToScalar(v)
	case scalar.Int64:
		v, _ := s.ToInt64()
		return shim.Int64ToScalar(v)
	case scalar.Uint8:
		v, _ := s.ToUint8()
		return shim.Uint8ToScalar(v)
	case scalar.Float16:
		v, _ := s.ToFloat16()
		return shim.Float16ToScalar(v)
	case scalar.BFloat16:
		v, _ := s.ToBFloat16()
		return shim.BFloat16ToScalar(v)
	case scalar.Float32:
		v, _ := s.ToFloat32()
		return shim.Float32ToScalar(v)
	case scalar.Float64:
		v, _ := s.ToFloat64()
		return shim.Float64ToScalar(v)
	default:
		v, _ := s.ToBool()
		return shim.BoolToScalar(v)
	}
}

// unbox reads h back as kind k and formats the result.
func unbox(h uintptr, k scalar.Kind) string {
	switch k {
	case scalar.Int8:
		return strconv.FormatInt(int64(shim.ScalarToInt8(h)), 10)
	case scalar.Int16:
		return strconv.FormatInt(int64(shim.ScalarToInt16(h)), 10)
	case scalar.Int32:
		return strconv.FormatInt(int64(shim.ScalarToInt32(h)), 10)
	case scalar.Int64:
		return strconv.FormatInt(shim.ScalarToInt64(h), 10)
	case scalar.Uint8:
		return strconv.FormatUint(uint64(shim.ScalarToUint8(h)), 10)
	case scalar.Float16:
		v := shim.ScalarToFloat16(h)
		return fmt.Sprintf("%v (0x%04x)", v.Float32(), v.Bits())
	case scalar.BFloat16:
		v := shim.ScalarToBFloat16(h)
		return fmt.Sprintf("%v (0x%04x)", v.Float32(), v.Bits())
	case scalar.Float32:
		return strconv.FormatFloat(float64(shim.ScalarToFloat32(h)), 'g', -1, 32)
	case scalar.Float64:
		return strconv.FormatFloat(shim.ScalarToFloat64(h), 'g', -1, 64)
	default:
		return strconv.FormatBool(shim.ScalarToBool(h))
	}
}
