package bot

import (
	"context"
	"fmt"
	"time"

	tele "gopkg.in/telebot.v3"

	"carrent/config"
	"carrent/pkg/logger"
	"carrent/pkg/models"
	"carrent/service"
)

type UserSession struct {
	State string
	Draft models.QuoteRequest
}

type Bot struct {
	Bot      *tele.Bot
	Log      logger.ILogger
	Cfg      *config.Config
	Svc      service.IServiceManager
	Sessions map[int64]*UserSession
}

const (
	StateIdle       = "idle"
	StatePickup     = "awaiting_pickup"
	StateDropoff    = "awaiting_dropoff"
	StateCar        = "awaiting_car"
	StatePickupAt   = "awaiting_pickup_time"
	StateDropoffAt  = "awaiting_dropoff_time"
	StateNation     = "awaiting_nationality"
	StateTour       = "awaiting_tour"
	StatePassengers = "awaiting_passengers"
	StateExtras     = "awaiting_extras"
)

// Layout the wizard accepts for pickup/dropoff input.
const dateLayout = "2006-01-02 15:04"

var messages = map[string]map[string]string{
	"en": {
		"welcome":        "👋 Welcome! I can price your car rental in a few taps.",
		"menu":           "What would you like to do?",
		"btn_quote":      "🚗 Get a quote",
		"btn_cars":       "🚙 Our cars",
		"btn_locations":  "📍 Locations",
		"pickup":         "📍 Where do you pick the car up?",
		"dropoff":        "🏁 Where do you drop it off?",
		"car":            "🚕 Pick a car:",
		"pickup_time":    "📅 Pickup date and time (e.g. 2024-06-01 09:00):",
		"dropoff_time":   "📅 Dropoff date and time (e.g. 2024-06-03 09:00):",
		"bad_time":       "Please use the format 2024-06-01 09:00.",
		"nationality":    "🪪 Driver nationality (affects the price):",
		"tour":           "🗺 Add a tour?",
		"skip":           "Skip",
		"passengers":     "👥 How many passengers?",
		"bad_passengers": "Please send a number of passengers, e.g. 2.",
		"extras":         "➕ Any extras?",
		"extra_phone":    "📱 Local phone line",
		"extra_ins":      "🛡 Travel insurance",
		"extras_done":    "✅ Show my quote",
		"no_catalog":     "Sorry, pricing is unavailable right now. Try again later.",
		"book":           "📲 Book via WhatsApp",
		"restart":        "🔄 New quote",
	},
}

func New(cfg *config.Config, svc service.IServiceManager, log logger.ILogger) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.TelegramBotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, err
	}
	bot := &Bot{
		Bot:      b,
		Log:      log,
		Cfg:      cfg,
		Svc:      svc,
		Sessions: make(map[int64]*UserSession),
	}
	bot.registerHandlers()
	return bot, nil
}

func (b *Bot) Start() {
	b.Log.Info("🤖 booking bot started")
	b.Bot.Start()
}

func (b *Bot) registerHandlers() {
	b.Bot.Handle("/start", b.handleStart)
	b.Bot.Handle(messages["en"]["btn_quote"], b.handleQuoteStart)
	b.Bot.Handle(messages["en"]["btn_cars"], b.handleCars)
	b.Bot.Handle(messages["en"]["btn_locations"], b.handleLocations)
	b.Bot.Handle(tele.OnCallback, b.handleCallback)
	b.Bot.Handle(tele.OnText, b.handleText)
}

func (b *Bot) session(id int64) *UserSession {
	s, ok := b.Sessions[id]
	if !ok {
		s = &UserSession{State: StateIdle}
		b.Sessions[id] = s
	}
	return s
}

func (b *Bot) handleStart(c tele.Context) error {
	b.Sessions[c.Sender().ID] = &UserSession{State: StateIdle}
	c.Send(messages["en"]["welcome"])
	return b.showMenu(c)
}

func (b *Bot) showMenu(c tele.Context) error {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text(messages["en"]["btn_quote"])),
		menu.Row(menu.Text(messages["en"]["btn_cars"]), menu.Text(messages["en"]["btn_locations"])),
	)
	return c.Send(messages["en"]["menu"], menu)
}

func (b *Bot) handleCars(c tele.Context) error {
	cat, err := b.snapshot(c)
	if err != nil {
		return err
	}
	for _, ct := range cat.EnabledCarTypes() {
		switch ct.Mode {
		case models.PricingFlatTransfer:
			c.Send(fmt.Sprintf("🚙 %s — airport transfers, tour %s%.0f/day", ct.Name, cat.Settings.CurrencySymbol, ct.DailyPrice))
		default:
			c.Send(fmt.Sprintf("🚙 %s — %s%.0f/day", ct.Name, cat.Settings.CurrencySymbol, ct.DailyPrice))
		}
	}
	return nil
}

func (b *Bot) handleLocations(c tele.Context) error {
	cat, err := b.snapshot(c)
	if err != nil {
		return err
	}
	for _, l := range cat.EnabledLocations() {
		icon := "🏙"
		if l.Kind == models.LocationAirport {
			icon = "✈️"
		}
		c.Send(fmt.Sprintf("%s %s", icon, l.Name))
	}
	return nil
}

func (b *Bot) snapshot(c tele.Context) (*models.Catalog, error) {
	cat, err := b.Svc.Catalog().Snapshot(context.Background())
	if err != nil {
		b.Log.Error("catalog snapshot failed", logger.Error(err))
		return nil, c.Send(messages["en"]["no_catalog"])
	}
	return cat, nil
}
