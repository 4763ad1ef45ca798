package sandbox

import (
	"fmt"
	"time"

	"github.com/MKhiriev/legacy-keeper/models"
)

// Demo accounts created by Seed.
const (
	DemoOwnerEmail       = "keeper@legacy.example"
	DemoOwnerPassword    = "keeper-demo"
	DemoRelativeEmail    = "relative@legacy.example"
	DemoRelativePassword = "relative-demo"
)

var demoMemories = []struct {
	title    string
	mime     string
	date     string
	location string
	tags     []string
}{
	{"Wedding portrait", "image/jpeg", "1968-06-14", "Lisbon", []string{"wedding", "grandparents"}},
	{"First house", "image/jpeg", "1972-09-02", "Porto", []string{"home"}},
	{"Beach summer", "image/png", "1979-08-11", "Algarve", []string{"summer", "holiday"}},
	{"Graduation", "image/jpeg", "1985-07-01", "Coimbra", []string{"school"}},
	{"Family recipe book", "application/pdf", "1987-12-24", "Porto", []string{"recipes"}},
	{"Christmas dinner", "image/jpeg", "1991-12-25", "Porto", []string{"christmas", "holiday"}},
	{"Road trip", "video/mp4", "1996-04-18", "Madrid", []string{"travel"}},
	{"Birthday party", "image/jpeg", "2001-03-09", "Lisbon", []string{"birthday"}},
	{"Garden", "image/jpeg", "2004-05-22", "Porto", []string{"home", "summer"}},
	{"Letters from abroad", "application/pdf", "2008-10-30", "Toronto", []string{"letters"}},
	{"Reunion", "video/mp4", "2012-08-15", "Lisbon", []string{"reunion"}},
	{"New baby", "image/jpeg", "2019-02-03", "Lisbon", []string{"birthday"}},
}

// Seed fills the sandbox with two demo accounts sharing one vault, a set
// of memories, a shareable link and a welcome notification.
func (s *Sandbox) Seed() error {
	if _, err := s.Register(models.Registration{
		Email:    DemoOwnerEmail,
		Password: DemoOwnerPassword,
		FullName: "Maria Keeper",
	}); err != nil {
		return fmt.Errorf("seed owner: %w", err)
	}
	owner, err := s.Authenticate(models.Credentials{Email: DemoOwnerEmail, Password: DemoOwnerPassword})
	if err != nil {
		return fmt.Errorf("seed owner: %w", err)
	}
	vaultID := *owner.ActiveVaultID

	invite, err := s.CreateShareableInvite(owner.ID, vaultID, models.APIShareableInviteRequest{
		Role:      models.RoleContributor,
		ExpiresAt: formatTime(s.now().Add(30 * 24 * time.Hour)),
	})
	if err != nil {
		return fmt.Errorf("seed invite: %w", err)
	}
	if _, err = s.Register(models.Registration{
		Email:     DemoRelativeEmail,
		Password:  DemoRelativePassword,
		FullName:  "Joao Keeper",
		JoinToken: invite.Token,
	}); err != nil {
		return fmt.Errorf("seed relative: %w", err)
	}

	for i, m := range demoMemories {
		_, err = s.CreateMedia(owner.ID, MediaUpload{
			VaultID:   vaultID,
			Title:     m.title,
			DateTaken: m.date,
			Location:  m.location,
			Tags:      m.tags,
			Files: []models.UploadFile{{
				Name:     fmt.Sprintf("memory-%02d", i+1),
				MimeType: m.mime,
				Content:  fmt.Appendf(nil, "%s (%s)", m.title, m.date),
			}},
		})
		if err != nil {
			return fmt.Errorf("seed memory %q: %w", m.title, err)
		}
	}

	s.Notify(owner.ID, "Welcome to Legacy Keeper", "Your family vault is ready.")
	s.logger.Info().Str("vault_id", vaultID).Int("memories", len(demoMemories)).Msg("sandbox seeded")
	return nil
}
