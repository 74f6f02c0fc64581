package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/config"
	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/models"
	"github.com/marwanmohammad0611-stack/Al-ibtida-receipt/app/store"
)

// Seeds the state store with the default school profile and fee
// categories. Existing data is kept unless -reset is given.
func main() {
	reset := flag.Bool("reset", false, "overwrite existing profile and categories")
	flag.Parse()

	cfg := config.Load()

	var st store.Store
	var err error
	if cfg.StoreDriver == "postgres" {
		st, err = store.NewPgStore(cfg.DatabaseURL)
	} else {
		st, err = store.NewFileStore(filepath.Join(cfg.DataDir, "state"))
	}
	if err != nil {
		log.Fatal("Failed to open state store:", err)
	}

	seedSlot(st, store.SlotProfile, models.DefaultSchoolProfile(), *reset)
	seedSlot(st, store.SlotCategories, models.DefaultFeeCategories(), *reset)

	log.Println("Seeding completed")
}

func seedSlot(st store.Store, slot string, value any, reset bool) {
	if !reset {
		var existing any
		found, err := st.Load(slot, &existing)
		if err != nil {
			log.Fatalf("Failed to inspect %s: %v", slot, err)
		}
		if found {
			log.Printf("Keeping existing %s", slot)
			return
		}
	}

	if err := st.Save(slot, value); err != nil {
		log.Fatalf("Failed to seed %s: %v", slot, err)
	}
	log.Printf("Seeded %s", slot)
}
