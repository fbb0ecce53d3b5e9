package poker

import (
	"encoding/json"

	"golang.org/x/exp/rand"
)

// Deck holds the cards left to draw and the ones already played/discarded
// this round. The union of both plus the cards in hand stays constant while
// a blind is being played (except for shattered glass cards).
type Deck struct {
	TotalCards  []Card `json:"total_cards"`
	PlayedCards []Card `json:"played_cards"`
}

func NewStandardDeck() *Deck {
	total := make([]Card, 0, 52)

	for _, suit := range Suits {
		for _, rank := range Ranks {
			total = append(total, Card{Rank: rank, Suit: suit})
		}
	}

	return &Deck{
		TotalCards:  total,
		PlayedCards: make([]Card, 0),
	}
}

func (d *Deck) AddCards(newCards []Card) {
	d.TotalCards = append(d.TotalCards, newCards...)
}

// RemoveCards removes one occurrence per requested card (used when a glass
// card shatters). Matching ignores debuff state but respects enhancements.
func (d *Deck) RemoveCards(toRemove []Card) {
	for _, removed := range toRemove {
		for i, card := range d.TotalCards {
			if SameCard(card, removed) && card.Enhancement == removed.Enhancement {
				d.TotalCards = append(d.TotalCards[:i], d.TotalCards[i+1:]...)
				break
			}
		}
	}
}

func (d *Deck) MarkAsPlayed(cards []Card) {
	d.PlayedCards = append(d.PlayedCards, cards...)
}

// CardsLeft is how many cards can still be drawn without reshuffling
func (d *Deck) CardsLeft() int {
	return len(d.TotalCards)
}

func (d *Deck) Draw(n int) []Card {
	if len(d.TotalCards) < n {
		d.reshufflePlayed()
	}

	if n > len(d.TotalCards) {
		n = len(d.TotalCards)
	}

	drawn := make([]Card, n)
	copy(drawn, d.TotalCards[:n])
	d.TotalCards = d.TotalCards[n:]

	return drawn
}

// Shuffle randomizes the deck using Fisher-Yates. Played cards are folded
// back in first so a fresh blind always starts from the full deck.
func (d *Deck) Shuffle(rng *rand.Rand) {
	if len(d.PlayedCards) > 0 {
		d.TotalCards = append(d.TotalCards, d.PlayedCards...)
		d.PlayedCards = []Card{}
	}

	for i := len(d.TotalCards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		d.TotalCards[i], d.TotalCards[j] = d.TotalCards[j], d.TotalCards[i]
	}
}

// Needed when fewer cards remain than a draw asks for: the played pile is
// appended back (in play order, no shuffle, the round stream already fixed it)
func (d *Deck) reshufflePlayed() {
	d.TotalCards = append(d.TotalCards, d.PlayedCards...)
	d.PlayedCards = make([]Card, 0)
}

func (d *Deck) ToJSON() ([]byte, error) {
	return json.Marshal(d)
}

func DeckFromJSON(data []byte) (*Deck, error) {
	var deck Deck
	if err := json.Unmarshal(data, &deck); err != nil {
		return nil, err
	}
	return &deck, nil
}
