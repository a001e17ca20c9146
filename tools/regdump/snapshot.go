package regdump

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/sigurn/crc8"
	"github.com/spf13/cobra"
	"go.etcd.io/bbolt"
)

var ErrNoSnapshot = errors.New("no such snapshot")

var crcTable = crc8.MakeTable(crc8.CRC8)

// Fingerprint returns the CRC-8 of a register block.
func Fingerprint(b []byte) uint8 {
	return crc8.Checksum(b, crcTable)
}

// Snapshot is a stored register block.
type Snapshot struct {
	Name        string `json:"name"`
	Size        int    `json:"size"`
	Fingerprint string `json:"fingerprint"`
}

// store keeps snapshots in a bbolt database, one bucket per peripheral.
type store struct {
	db *bbolt.DB
}

func openStore(path string) (*store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &store{db}, nil
}

func (s *store) Close() error {
	return s.db.Close()
}

func (s *store) save(periph, name string, b block) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bkt, err := tx.CreateBucketIfNotExists([]byte(periph))
		if err != nil {
			return err
		}
		return bkt.Put([]byte(name), b)
	})
}

func (s *store) load(periph, name string) (b block, err error) {
	err = s.db.View(func(tx *bbolt.Tx) error {
		var v []byte
		if bkt := tx.Bucket([]byte(periph)); bkt != nil {
			v = bkt.Get([]byte(name))
		}
		if v == nil {
			return fmt.Errorf("%w: %s/%s", ErrNoSnapshot, periph, name)
		}
		b = append(block(nil), v...) // v is only valid during the transaction
		return nil
	})
	return
}

func (s *store) list(periph string) (snaps []Snapshot, err error) {
	err = s.db.View(func(tx *bbolt.Tx) error {
		bkt := tx.Bucket([]byte(periph))
		if bkt == nil {
			return nil
		}
		return bkt.ForEach(func(k, v []byte) error {
			snaps = append(snaps, Snapshot{
				Name:        string(k),
				Size:        len(v),
				Fingerprint: fmt.Sprintf("%02x", Fingerprint(v)),
			})
			return nil
		})
	})
	return
}

// withStore opens the snapshot database for the duration of f.
func withStore(cfg *Config, f func(*store) error) error {
	s, err := openStore(cfg.DB)
	if err != nil {
		return err
	}
	log.Printf("opened %s", cfg.DB)
	err = f(s)
	if cerr := s.Close(); err == nil {
		err = cerr
	}
	return err
}

func newSnapshotCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Store and compare register blocks",
	}

	var base baseFlag
	save := &cobra.Command{
		Use:   "save <peripheral> <dump.hex> <name>",
		Short: "Store the register block of a peripheral under name",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := lookup(args[0])
			if err != nil {
				return err
			}
			addr, err := base.get(p)
			if err != nil {
				return err
			}
			b, err := readDump(args[1], addr, p)
			if err != nil {
				return err
			}
			err = withStore(cfg, func(s *store) error { return s.save(p.Name, args[2], b) })
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s/%s %02x\n", p.Name, args[2], Fingerprint(b))
			return nil
		},
	}
	base.register(save)

	list := &cobra.Command{
		Use:   "list <peripheral>",
		Short: "List the snapshots of a peripheral",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := lookup(args[0])
			if err != nil {
				return err
			}
			var snaps []Snapshot
			err = withStore(cfg, func(s *store) (err error) {
				snaps, err = s.list(p.Name)
				return
			})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if cfg.Output == "yaml" {
				return writeYAML(w, snaps)
			}
			for _, sn := range snaps {
				fmt.Fprintf(w, "%-24s %5d %s\n", sn.Name, sn.Size, sn.Fingerprint)
			}
			return nil
		},
	}

	diff := &cobra.Command{
		Use:   "diff <peripheral> <a> <b>",
		Short: "Print the register fields that differ between two snapshots",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := lookup(args[0])
			if err != nil {
				return err
			}
			var a, b block
			err = withStore(cfg, func(s *store) (err error) {
				if a, err = s.load(p.Name, args[1]); err != nil {
					return err
				}
				b, err = s.load(p.Name, args[2])
				return err
			})
			if err != nil {
				return err
			}
			return writeDiff(cmd.OutOrStdout(), cfg.Output, diffBlocks(p, a, b))
		},
	}

	cmd.AddCommand(save, list, diff)
	return cmd
}
