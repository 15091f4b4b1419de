package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"deck-lite/codec"
	"deck-lite/deck"
)

func main() {
	cfg, err := loadConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("[deckdemo] Failed to load config: %v", err)
	}
	if err := run(cfg, os.Stdout); err != nil {
		log.Fatalf("[deckdemo] %v", err)
	}
}

func run(cfg config, w io.Writer) error {
	d := deck.Shuffled(deck.WithSeed(cfg.Seed))

	if cfg.Discard > 0 {
		burned := d.Discard(cfg.Discard)
		log.Printf("[deckdemo] Discarded %d of %d requested cards", burned, cfg.Discard)
	}

	hand, err := d.Draw(cfg.Draw)
	if err != nil {
		return fmt.Errorf("draw hand: %w", err)
	}
	more, err := d.Draw(cfg.Extra)
	if err != nil {
		return fmt.Errorf("draw extra: %w", err)
	}
	hand.Add(more)

	fmt.Fprintf(w, "hand: %s\n", hand)
	fmt.Fprintf(w, "deck: %d cards left\n", d.Len())
	if cfg.Snapshot {
		fmt.Fprintf(w, "snapshot: %s\n", hex.EncodeToString(codec.MarshalHand(hand)))
	}
	return nil
}
