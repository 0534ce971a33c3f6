package i18n

import (
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported locale identifiers.
const (
	LocaleEnglish = "en"
	LocaleRussian = "ru"
	DefaultLocale = LocaleEnglish
)

// Message keys. The English catalog entry doubles as the key.
const (
	KeyTitle        = "Users"
	KeyColumnID     = "ID"
	KeyColumnFirst  = "First name"
	KeyColumnLast   = "Last name"
	KeyColumnPhone  = "Phone"
	KeyColumnEmail  = "Email"
	KeyColumnUpdate = "Updated at"
	KeyFirst        = "First"
	KeyPrevious     = "Previous"
	KeyNext         = "Next"
	KeyLast         = "Last"
	KeyFetchError   = "Error %d while loading data"
	KeyPageOf       = "Page %s of %s"
	KeyTotal        = "%d users"
	KeyNoUsers      = "No users"
	KeyLoading      = "Loading users..."
	KeyGotoPrompt   = "Go to page: "
)

//nolint:gochecknoglobals // Supported tags are a compile-time constant list.
var supported = []language.Tag{language.English, language.Russian}

//nolint:gochecknoglobals // Matcher is immutable after construction.
var matcher = language.NewMatcher(supported)

//nolint:gochecknoglobals // Catalog is built once and only read afterwards.
var messages = mustBuildCatalog()

// mustBuildCatalog panics on a malformed entry; the catalog is built at package init.
func mustBuildCatalog() catalog.Catalog {
	c, err := buildCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

func buildCatalog() (catalog.Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))

	english := []string{
		KeyTitle, KeyColumnID, KeyColumnFirst, KeyColumnLast, KeyColumnPhone,
		KeyColumnEmail, KeyColumnUpdate, KeyFirst, KeyPrevious, KeyNext, KeyLast,
		KeyFetchError, KeyPageOf, KeyTotal, KeyNoUsers, KeyLoading, KeyGotoPrompt,
	}
	var errs []error
	for _, key := range english {
		if err := b.SetString(language.English, key, key); err != nil {
			errs = append(errs, fmt.Errorf("en %q: %w", key, err))
		}
	}

	russian := map[string]string{
		KeyTitle:        "Пользователи",
		KeyColumnID:     "ID",
		KeyColumnFirst:  "Имя",
		KeyColumnLast:   "Фамилия",
		KeyColumnPhone:  "Телефон",
		KeyColumnEmail:  "Email",
		KeyColumnUpdate: "Дата обновления",
		KeyFirst:        "В начало",
		KeyPrevious:     "Назад",
		KeyNext:         "Вперед",
		KeyLast:         "В конец",
		KeyFetchError:   "Ошибка %d при загрузке данных",
		KeyPageOf:       "Страница %s из %s",
		KeyTotal:        "Пользователей: %d",
		KeyNoUsers:      "Нет пользователей",
		KeyLoading:      "Загрузка пользователей...",
		KeyGotoPrompt:   "Перейти на страницу: ",
	}
	for key, msg := range russian {
		if err := b.SetString(language.Russian, key, msg); err != nil {
			errs = append(errs, fmt.Errorf("ru %q: %w", key, err))
		}
	}

	return b, errors.Join(errs...)
}

// Localizer renders labels for one locale.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Localizer for locale, matched against the supported locales.
// Unknown or empty locales fall back to English.
func New(locale string) *Localizer {
	tag := language.English
	if locale != "" {
		if parsed, err := language.Parse(locale); err == nil {
			_, idx, confidence := matcher.Match(parsed)
			if confidence != language.No {
				tag = supported[idx]
			}
		}
	}

	return &Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(messages)),
	}
}

// Locale returns the matched locale as a BCP 47 string.
func (l *Localizer) Locale() string {
	return l.tag.String()
}

// T returns the translation for key, formatted with args.
func (l *Localizer) T(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

// Title returns the page heading.
func (l *Localizer) Title() string {
	return l.T(KeyTitle)
}

// Columns returns the table headers in display order:
// id, first name, last name, phone, email, updated at.
func (l *Localizer) Columns() []string {
	return []string{
		l.T(KeyColumnID),
		l.T(KeyColumnFirst),
		l.T(KeyColumnLast),
		l.T(KeyColumnPhone),
		l.T(KeyColumnEmail),
		l.T(KeyColumnUpdate),
	}
}

// FetchError returns the alert shown when loading failed with statusCode.
func (l *Localizer) FetchError(statusCode int) string {
	return l.T(KeyFetchError, statusCode)
}

// PageOf returns the "page x of y" footer. Page numbers are not digit-grouped
// so they read the same as the page buttons.
func (l *Localizer) PageOf(page, total int) string {
	return l.T(KeyPageOf, strconv.Itoa(page), strconv.Itoa(total))
}

// Total returns the record count footer with locale-aware digit grouping.
func (l *Localizer) Total(count int) string {
	return l.T(KeyTotal, count)
}

// IsSupported reports whether locale names one of the bundled catalogs.
func IsSupported(locale string) bool {
	tag, err := language.Parse(locale)
	if err != nil {
		return false
	}
	base, _ := tag.Base()
	for _, s := range supported {
		sb, _ := s.Base()
		if base == sb {
			return true
		}
	}
	return false
}
