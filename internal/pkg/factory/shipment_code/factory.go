package shipment_code

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode"
)

const (
	trackingPrefix  = "TLX"
	destLetters     = 3
	fallbackLetters = "XXX"
)

// CodeFactory генерирует трекинг-код и код получения. Уникальность не
// гарантирует: коллизии ловит уникальный индекс в БД, сервис перегенерирует.
type CodeFactory struct{}

func New() *CodeFactory {
	return &CodeFactory{}
}

// NewTrackingCode собирает код вида TLX-APY-0042 из первых букв города
// назначения и случайного четырехзначного суффикса.
func (f *CodeFactory) NewTrackingCode(destination string) string {
	return fmt.Sprintf("%s-%s-%04d", trackingPrefix, destinationTag(destination), rand.IntN(10000))
}

func (f *CodeFactory) NewSecurityCode() string {
	return fmt.Sprintf("%04d", rand.IntN(10000))
}

func destinationTag(destination string) string {
	var tag strings.Builder
	for _, r := range destination {
		// только ASCII-буквы: формат кода жестко [A-Z]{3}
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			continue
		}
		tag.WriteRune(unicode.ToUpper(r))
		if tag.Len() >= destLetters {
			break
		}
	}

	if tag.Len() < destLetters {
		// город короче трех букв: добиваем заглушкой, формат важнее смысла
		return (tag.String() + fallbackLetters)[:destLetters]
	}
	return tag.String()
}
