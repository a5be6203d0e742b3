// Command seed-roster writes a sample roster workbook for ROSTER_FILE.
package main

import (
	"fmt"
	"os"

	"github.com/tridenda/talentlytica/internal/config"
	"github.com/tridenda/talentlytica/internal/logger"
	"github.com/tridenda/talentlytica/internal/model"
	"github.com/tridenda/talentlytica/internal/roster"
)

const defaultOutput = "roster.xlsx"

var names = []string{
	"Budi Santoso", "Siti Aminah", "Andi Pratama", "Rina Wati", "Joko Susilo",
	"Ayu Lestari", "Dodi Kusuma", "Eka Putri", "Fahri Hamzah", "Gita Savitri",
	"Hendra Gunawan", "Ika Sari", "Jamal Mirdad", "Kiki Fatmala", "Lukman Hakim",
	"Maya Septiana", "Nanda Pratama", "Oki Setiana", "Putri Dian", "Qori Maharani",
	"Rafi Ahmad", "Siska Saraswati", "Toni Setiawan", "Umi Kalsum", "Vina Panduwinata",
	"Wahyu Hidayat", "Xena Maharani", "Yudi Pratama", "Zaki Anwar", "Alifia Zahra",
}

var aspectNames = []string{
	"Kerja Sama", "Inisiatif", "Tanggung Jawab", "Komunikasi",
}

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	output := cfg.RosterFile
	if output == "" {
		output = defaultOutput
	}

	count := cfg.StudentCount
	if count > len(names) {
		log.Warn().Int("requested", count).Int("available", len(names)).Msg("Capping student count")
		count = len(names)
	}

	fmt.Printf("=== Seeding roster with %d students ===\n", count)

	students := make([]model.Student, 0, count)
	for i := 0; i < count; i++ {
		students = append(students, model.Student{ID: i + 1, Name: names[i]})
	}
	aspects := make([]model.Aspect, 0, len(aspectNames))
	for i, name := range aspectNames {
		aspects = append(aspects, model.Aspect{ID: i + 1, Name: name})
	}

	ro, err := roster.New(students, aspects)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build roster")
	}

	f, err := os.Create(output)
	if err != nil {
		log.Fatal().Err(err).Str("file", output).Msg("Failed to create roster file")
	}
	if err := roster.WriteExcel(f, ro); err != nil {
		f.Close()
		log.Fatal().Err(err).Msg("Failed to write roster workbook")
	}
	if err := f.Close(); err != nil {
		log.Fatal().Err(err).Msg("Failed to close roster file")
	}

	fmt.Printf("\nSeed completed! Wrote %s (%d students, %d aspects).\n", output, count, len(aspects))
}
