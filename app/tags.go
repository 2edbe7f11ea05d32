package app

import (
	"math/rand/v2"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maruel/natural"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusflow/internal/config"
	"github.com/ayoisaiah/focusflow/internal/models"
	"github.com/ayoisaiah/focusflow/internal/ui"
	"github.com/ayoisaiah/focusflow/store"
	"github.com/ayoisaiah/focusflow/timer"
)

// palette holds the colours given to new tags.
var palette = []string{
	"#6366f1",
	"#10b981",
	"#f59e0b",
	"#ef4444",
	"#8b5cf6",
	"#ec4899",
	"#14b8a6",
	"#f97316",
	"#0ea5e9",
	"#84cc16",
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// findTag looks a tag up by id, then by case-insensitive name.
func findTag(tags []models.Tag, ref string) (models.Tag, bool) {
	ref = strings.TrimSpace(ref)

	if t, ok := models.FindTag(tags, ref); ok {
		return t, true
	}

	for _, t := range tags {
		if strings.EqualFold(t.Name, ref) {
			return t, true
		}
	}

	return models.Tag{}, false
}

// sortTags orders tags by name in natural order.
func sortTags(tags []models.Tag) []models.Tag {
	sorted := slices.Clone(tags)

	slices.SortStableFunc(sorted, func(a, b models.Tag) int {
		switch {
		case natural.Less(strings.ToLower(a.Name), strings.ToLower(b.Name)):
			return -1
		case natural.Less(strings.ToLower(b.Name), strings.ToLower(a.Name)):
			return 1
		default:
			return 0
		}
	})

	return sorted
}

// pickColor prefers a palette colour no tag uses yet.
func pickColor(tags []models.Tag, rng *rand.Rand) string {
	var unused []string

	for _, c := range palette {
		if !slices.ContainsFunc(tags, func(t models.Tag) bool {
			return strings.EqualFold(t.Color, c)
		}) {
			unused = append(unused, c)
		}
	}

	if len(unused) == 0 {
		unused = palette
	}

	return unused[rng.IntN(len(unused))]
}

// addTag returns tags with a new tag called name.
func addTag(
	tags []models.Tag,
	name, color string,
	newID func() string,
	rng *rand.Rand,
) ([]models.Tag, models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, models.Tag{}, errTagNameRequired
	}

	for _, t := range tags {
		if strings.EqualFold(t.Name, name) {
			return nil, models.Tag{}, errTagExists.Fmt(name)
		}
	}

	if color == "" {
		color = pickColor(tags, rng)
	} else if !hexColor.MatchString(color) {
		return nil, models.Tag{}, errInvalidColor.Fmt(color)
	}

	t := models.Tag{ID: newID(), Name: name, Color: strings.ToLower(color)}

	return append(slices.Clone(tags), t), t, nil
}

// removeTag returns tags without the tag ref points to.
func removeTag(
	tags []models.Tag,
	ref string,
) ([]models.Tag, models.Tag, error) {
	t, ok := findTag(tags, ref)
	if !ok {
		return nil, models.Tag{}, errUnknownTag.Fmt(ref)
	}

	out := slices.DeleteFunc(slices.Clone(tags), func(v models.Tag) bool {
		return v.ID == t.ID
	})

	return out, t, nil
}

// fallbackTag is selected after the selected tag is deleted.
func fallbackTag(tags []models.Tag) models.Tag {
	if len(tags) > 0 {
		return tags[0]
	}

	return models.DefaultTags()[0]
}

// withTimer opens the store and the persisted timer for a tag command.
func withTimer(ctx *cli.Context, fn func(db store.DB, m *timer.Machine) error) error {
	setup, err := prepareTimer(ctx, false)
	if err != nil {
		return err
	}

	defer setup.db.Close()

	m := timer.NewMachine(setup.db, setup.restored, setup.tags)
	defer m.Close()

	return fn(setup.db, m)
}

func tagsListAction(ctx *cli.Context) error {
	return withTimer(ctx, func(_ store.DB, m *timer.Machine) error {
		tags := sortTags(m.Tags())

		if ctx.Bool("json") {
			return printJSON(tags)
		}

		data := [][]string{{"", "NAME", "COLOUR", "ID"}}

		for _, t := range tags {
			selected := ""
			if t.ID == m.Snapshot().SelectedTagID {
				selected = ui.Green("●")
			}

			data = append(data, []string{
				selected,
				t.Name,
				ui.Hex(t.Color, t.Color),
				t.ID,
			})
		}

		ui.PrintTable(data, config.Stdout)

		return nil
	})
}

func tagsAddAction(ctx *cli.Context) error {
	return withTimer(ctx, func(db store.DB, m *timer.Machine) error {
		rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))

		tags, t, err := addTag(
			m.Tags(),
			strings.Join(ctx.Args().Slice(), " "),
			ctx.String("color"),
			uuid.NewString,
			rng,
		)
		if err != nil {
			return err
		}

		err = db.SaveTags(tags)
		if err != nil {
			return err
		}

		pterm.Success.Printfln("Added tag %s", ui.Hex(t.Color, t.Name))

		return nil
	})
}

func tagsDeleteAction(ctx *cli.Context) error {
	return withTimer(ctx, func(db store.DB, m *timer.Machine) error {
		tags, t, err := removeTag(m.Tags(), ctx.Args().First())
		if err != nil {
			return err
		}

		err = db.SaveTags(tags)
		if err != nil {
			return err
		}

		if m.Snapshot().SelectedTagID == t.ID {
			m.SelectTag(fallbackTag(tags).ID)
		}

		pterm.Success.Printfln("Deleted tag %s", t.Name)

		return nil
	})
}

func tagsSelectAction(ctx *cli.Context) error {
	return withTimer(ctx, func(_ store.DB, m *timer.Machine) error {
		t, ok := findTag(m.Tags(), ctx.Args().First())
		if !ok {
			return errUnknownTag.Fmt(ctx.Args().First())
		}

		m.SelectTag(t.ID)

		pterm.Success.Printfln("Next sessions will be tagged %s", ui.Hex(t.Color, t.Name))

		return nil
	})
}
