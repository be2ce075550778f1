package database

import (
	"context"
	"database/sql"

	"github.com/jask/showcase/internal/content"
	"github.com/jask/showcase/internal/database/repository"
)

// SeedDefaults stores the demo page when the database has no components.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	n, err := repository.NewComponentRepo(db).Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return ImportPage(ctx, db, DemoPage())
}

// DemoPage is the built-in gallery content.
func DemoPage() content.Page {
	item := func(component, title, body, href string) content.Item {
		it := content.Item{ID: content.StableID(component, title), Title: title, Body: body}
		if href != "" {
			it.Link = &content.Link{Href: href}
		}
		return it
	}
	return content.Page{
		Name: "home",
		Components: []content.Component{
			{
				ID: content.StableID("HeroCarousel"), Name: "HeroCarousel", Kind: content.KindCarousel,
				Title: "Featured", Variant: content.VariantDark,
				Items: []content.Item{
					item("HeroCarousel", "Spring collection", "New arrivals every week.", "/spring"),
					item("HeroCarousel", "Free shipping", "On orders over 50.", ""),
					item("HeroCarousel", "Gift cards", "Send one in seconds.", "/gift-cards"),
				},
			},
			{
				ID: content.StableID("LogoTabs"), Name: "LogoTabs", Kind: content.KindTabs,
				Title: "Our partners", Variant: content.VariantDefault,
				Items: []content.Item{
					item("LogoTabs", "Retail", "Stores in 40 cities.", ""),
					item("LogoTabs", "Travel", "Airlines and rail.", "/partners/travel"),
					item("LogoTabs", "Finance", "Cards and loyalty.", ""),
					item("LogoTabs", "Media", "Press and broadcast.", ""),
				},
			},
			{
				ID: content.StableID("SignupPromo"), Name: "SignupPromo", Kind: content.KindPromo,
				Title: "Join the club", Body: "Members get early access to every sale.",
				Link: &content.Link{Href: "/join", Text: "Sign up"}, Variant: content.VariantAccent,
			},
			{
				ID: content.StableID("Footer"), Name: "Footer", Kind: content.KindLinkList,
				Title: "Company", Variant: content.VariantDefault,
				Items: []content.Item{
					item("Footer", "About", "", "/about"),
					item("Footer", "Careers", "", "/careers"),
					item("Footer", "Press", "", ""),
					item("Footer", "Contact", "", "/contact"),
					item("Footer", "Legal", "", "/legal"),
				},
			},
		},
	}
}
