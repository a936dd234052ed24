package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tele "gopkg.in/telebot.v3"

	"carrent/pkg/logger"
	"carrent/pkg/models"
	"carrent/pkg/pricing"
)

func (b *Bot) handleQuoteStart(c tele.Context) error {
	session := b.session(c.Sender().ID)
	session.State = StatePickup
	session.Draft = models.QuoteRequest{PassengerCount: 1}
	return b.askLocation(c, "pickup", "pu_")
}

func (b *Bot) askLocation(c tele.Context, prompt, prefix string) error {
	cat, err := b.snapshot(c)
	if err != nil {
		return err
	}
	menu := &tele.ReplyMarkup{}
	var rows []tele.Row
	for _, l := range cat.EnabledLocations() {
		rows = append(rows, menu.Row(menu.Data(l.Name, prefix+l.ID)))
	}
	menu.Inline(rows...)
	return c.Send(messages["en"][prompt], menu)
}

func (b *Bot) askCar(c tele.Context) error {
	cat, err := b.snapshot(c)
	if err != nil {
		return err
	}
	menu := &tele.ReplyMarkup{}
	var rows []tele.Row
	for _, ct := range cat.EnabledCarTypes() {
		rows = append(rows, menu.Row(menu.Data(ct.Name, "car_"+ct.ID)))
	}
	menu.Inline(rows...)
	return c.Send(messages["en"]["car"], menu)
}

func (b *Bot) askFactor(c tele.Context, entries []*models.FactorEntry, prompt, prefix string) error {
	menu := &tele.ReplyMarkup{}
	var rows []tele.Row
	for _, f := range models.EnabledFactors(entries) {
		rows = append(rows, menu.Row(menu.Data(f.Name, prefix+f.ID)))
	}
	rows = append(rows, menu.Row(menu.Data(messages["en"]["skip"], prefix+"skip")))
	menu.Inline(rows...)
	return c.Send(messages["en"][prompt], menu)
}

func (b *Bot) askExtras(c tele.Context, session *UserSession) error {
	menu := &tele.ReplyMarkup{}
	phone := messages["en"]["extra_phone"]
	if session.Draft.PhoneLine {
		phone += " ✓"
	}
	ins := messages["en"]["extra_ins"]
	if session.Draft.TravelInsurance {
		ins += " ✓"
	}
	menu.Inline(
		menu.Row(menu.Data(phone, "extra_phone")),
		menu.Row(menu.Data(ins, "extra_ins")),
		menu.Row(menu.Data(messages["en"]["extras_done"], "extra_done")),
	)
	return c.Send(messages["en"]["extras"], menu)
}

func (b *Bot) handleCallback(c tele.Context) error {
	data := strings.TrimPrefix(strings.TrimSpace(c.Callback().Data), "\f")
	session := b.session(c.Sender().ID)

	switch {
	case strings.HasPrefix(data, "pu_"):
		session.Draft.PickupLocationID = strings.TrimPrefix(data, "pu_")
		session.State = StateDropoff
		c.Respond()
		return b.askLocation(c, "dropoff", "do_")

	case strings.HasPrefix(data, "do_"):
		session.Draft.DropoffLocationID = strings.TrimPrefix(data, "do_")
		session.State = StateCar
		c.Respond()
		return b.askCar(c)

	case strings.HasPrefix(data, "car_"):
		session.Draft.CarTypeID = strings.TrimPrefix(data, "car_")
		session.State = StatePickupAt
		c.Respond()
		return c.Send(messages["en"]["pickup_time"])

	case strings.HasPrefix(data, "nat_"):
		if id := strings.TrimPrefix(data, "nat_"); id != "skip" {
			session.Draft.DriverNationalityID = id
		}
		session.State = StateTour
		c.Respond()
		cat, err := b.snapshot(c)
		if err != nil {
			return err
		}
		return b.askFactor(c, cat.TourTypes, "tour", "tour_")

	case strings.HasPrefix(data, "tour_"):
		if id := strings.TrimPrefix(data, "tour_"); id != "skip" {
			session.Draft.TourTypeID = id
		}
		session.State = StatePassengers
		c.Respond()
		return c.Send(messages["en"]["passengers"])

	case data == "extra_phone":
		session.Draft.PhoneLine = !session.Draft.PhoneLine
		c.Respond()
		return b.askExtras(c, session)

	case data == "extra_ins":
		session.Draft.TravelInsurance = !session.Draft.TravelInsurance
		c.Respond()
		return b.askExtras(c, session)

	case data == "extra_done":
		session.State = StateIdle
		c.Respond()
		return b.sendQuote(c, session)

	case data == "restart":
		c.Respond()
		return b.handleQuoteStart(c)
	}
	return c.Respond()
}

func (b *Bot) handleText(c tele.Context) error {
	session, ok := b.Sessions[c.Sender().ID]
	if !ok || session.State == StateIdle {
		return nil
	}

	switch session.State {
	case StatePickupAt:
		t, err := time.Parse(dateLayout, strings.TrimSpace(c.Text()))
		if err != nil {
			return c.Send(messages["en"]["bad_time"])
		}
		session.Draft.PickupAt = t
		session.State = StateDropoffAt
		return c.Send(messages["en"]["dropoff_time"])

	case StateDropoffAt:
		t, err := time.Parse(dateLayout, strings.TrimSpace(c.Text()))
		if err != nil {
			return c.Send(messages["en"]["bad_time"])
		}
		session.Draft.DropoffAt = t
		session.State = StateNation
		cat, err2 := b.snapshot(c)
		if err2 != nil {
			return err2
		}
		return b.askFactor(c, cat.Nationalities, "nationality", "nat_")

	case StatePassengers:
		n, err := strconv.Atoi(strings.TrimSpace(c.Text()))
		if err != nil || n < 1 {
			return c.Send(messages["en"]["bad_passengers"])
		}
		session.Draft.PassengerCount = n
		session.State = StateExtras
		return b.askExtras(c, session)
	}
	return nil
}

// sendQuote prices the draft leniently: a broken draft renders as an
// unpriced quote with a hint, the wizard never errors at the user.
func (b *Bot) sendQuote(c tele.Context, session *UserSession) error {
	quote, link, err := b.Svc.Quote().Quote(context.Background(), session.Draft, pricing.ModeLenient)
	if err != nil {
		b.Log.Error("quote computation failed", logger.Error(err))
		return c.Send(messages["en"]["no_catalog"])
	}

	text := formatQuote(quote)
	menu := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	if link != "" {
		rows = append(rows, menu.Row(menu.URL(messages["en"]["book"], link)))
	}
	rows = append(rows, menu.Row(menu.Data(messages["en"]["restart"], "restart")))
	menu.Inline(rows...)
	return c.Send(text, menu)
}

func formatQuote(q *models.Quote) string {
	var sb strings.Builder
	if q.Degraded {
		sb.WriteString("⚠️ Can't price this yet.\n")
	} else {
		fmt.Fprintf(&sb, "💰 Total: %s%d for %d day(s)\n", q.CurrencySymbol, q.TotalPrice, q.TotalDays)
		for _, item := range q.LineItems {
			fmt.Fprintf(&sb, "• %s: %s%.0f\n", item.Label, q.CurrencySymbol, item.Amount)
		}
		for _, f := range q.AppliedFactors {
			fmt.Fprintf(&sb, "× %s: %.2f\n", f.Label, f.Factor)
		}
	}
	for _, note := range q.Notes {
		fmt.Fprintf(&sb, "ℹ️ %s\n", note)
	}
	return strings.TrimRight(sb.String(), "\n")
}
