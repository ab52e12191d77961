package service

import "github.com/Skotchmaster/vinyl_shop/services/cart/internal/transport"

// Fallback price table used when the catalog cannot be reached or does
// not know an id. Kept in sync with the storefront demo data.
var mockProducts = map[string]transport.CartItem{
	"1": {
		ID:       "1",
		Title:    "Abbey Road",
		Artist:   "The Beatles",
		Price:    29.99,
		ImageURL: "https://i.scdn.co/image/ab67616d0000b273dcf4823e7b0b2934f2e45b8b",
	},
	"2": {
		ID:       "2",
		Title:    "Sgt. Pepper's Lonely Hearts Club Band",
		Artist:   "The Beatles",
		Price:    32.99,
		ImageURL: "https://i.scdn.co/image/ab67616d0000b2739c39ba8e4b4b4b4b4b4b4b4b",
	},
	"3": {
		ID:       "3",
		Title:    "The White Album",
		Artist:   "The Beatles",
		Price:    39.99,
		ImageURL: "https://i.scdn.co/image/ab67616d0000b2739c39ba8e4b4b4b4b4b4b4b4b",
	},
	"4": {
		ID:       "4",
		Title:    "Revolver",
		Artist:   "The Beatles",
		Price:    28.99,
		ImageURL: "https://i.scdn.co/image/ab67616d0000b2739c39ba8e4b4b4b4b4b4b4b4b",
	},
	"5": {
		ID:       "5",
		Title:    "The Dark Side of the Moon",
		Artist:   "Pink Floyd",
		Price:    34.99,
		ImageURL: "https://i.scdn.co/image/ab67616d0000b2739c39ba8e4b4b4b4b4b4b4b4b",
	},
	"6": {
		ID:       "6",
		Title:    "The Wall",
		Artist:   "Pink Floyd",
		Price:    44.99,
		ImageURL: "https://i.scdn.co/image/ab67616d0000b2739c39ba8e4b4b4b4b4b4b4b4b",
	},
	"7": {
		ID:       "7",
		Title:    "Wish You Were Here",
		Artist:   "Pink Floyd",
		Price:    31.99,
		ImageURL: "https://i.scdn.co/image/ab67616d0000b2739c39ba8e4b4b4b4b4b4b4b4b",
	},
	"8": {
		ID:       "8",
		Title:    "Led Zeppelin IV",
		Artist:   "Led Zeppelin",
		Price:    32.99,
		ImageURL: "https://i.scdn.co/image/ab67616d0000b2739c39ba8e4b4b4b4b4b4b4b4b",
	},
	"9": {
		ID:       "9",
		Title:    "Physical Graffiti",
		Artist:   "Led Zeppelin",
		Price:    38.99,
		ImageURL: "https://i.scdn.co/image/ab67616d0000b2739c39ba8e4b4b4b4b4b4b4b4b",
	},
	"10": {
		ID:       "10",
		Title:    "A Night at the Opera",
		Artist:   "Queen",
		Price:    31.99,
		ImageURL: "https://i.scdn.co/image/ab67616d0000b2739c39ba8e4b4b4b4b4b4b4b4b",
	},
	"11": {
		ID:       "11",
		Title:    "News of the World",
		Artist:   "Queen",
		Price:    29.99,
		ImageURL: "https://i.scdn.co/image/ab67616d0000b2739c39ba8e4b4b4b4b4b4b4b4b",
	},
	"12": {
		ID:       "12",
		Title:    "Sticky Fingers",
		Artist:   "The Rolling Stones",
		Price:    33.99,
		ImageURL: "https://i.scdn.co/image/ab67616d0000b2739c39ba8e4b4b4b4b4b4b4b4b",
	},
	"13": {
		ID:       "13",
		Title:    "Exile on Main St.",
		Artist:   "The Rolling Stones",
		Price:    39.99,
		ImageURL: "https://i.scdn.co/image/ab67616d0000b2739c39ba8e4b4b4b4b4b4b4b4b",
	},
	"14": {
		ID:       "14",
		Title:    "The Doors",
		Artist:   "The Doors",
		Price:    27.99,
		ImageURL: "https://i.scdn.co/image/ab67616d0000b2739c39ba8e4b4b4b4b4b4b4b4b",
	},
	"15": {
		ID:       "15",
		Title:    "Back in Black",
		Artist:   "AC/DC",
		Price:    30.99,
		ImageURL: "https://i.scdn.co/image/ab67616d0000b2739c39ba8e4b4b4b4b4b4b4b4b",
	},
	"16": {
		ID:       "16",
		Title:    "Paranoid",
		Artist:   "Black Sabbath",
		Price:    28.99,
		ImageURL: "https://i.scdn.co/image/ab67616d0000b2739c39ba8e4b4b4b4b4b4b4b4b",
	},
	"17": {
		ID:       "17",
		Title:    "The Rise and Fall of Ziggy Stardust",
		Artist:   "David Bowie",
		Price:    32.99,
		ImageURL: "https://i.scdn.co/image/ab67616d0000b2739c39ba8e4b4b4b4b4b4b4b4b",
	},
	"18": {
		ID:       "18",
		Title:    "Highway 61 Revisited",
		Artist:   "Bob Dylan",
		Price:    29.99,
		ImageURL: "https://i.scdn.co/image/ab67616d0000b2739c39ba8e4b4b4b4b4b4b4b4b",
	},
	"19": {
		ID:       "19",
		Title:    "Tommy",
		Artist:   "The Who",
		Price:    35.99,
		ImageURL: "https://i.scdn.co/image/ab67616d0000b2739c39ba8e4b4b4b4b4b4b4b4b",
	},
	"20": {
		ID:       "20",
		Title:    "Machine Head",
		Artist:   "Deep Purple",
		Price:    30.99,
		ImageURL: "https://i.scdn.co/image/ab67616d0000b2739c39ba8e4b4b4b4b4b4b4b4b",
	},
	"21": {
		ID:       "21",
		Title:    "Are You Experienced",
		Artist:   "Jimi Hendrix",
		Price:    31.99,
		ImageURL: "https://i.scdn.co/image/ab67616d0000b2739c39ba8e4b4b4b4b4b4b4b4b",
	},
	"22": {
		ID:       "22",
		Title:    "London Calling",
		Artist:   "The Clash",
		Price:    33.99,
		ImageURL: "https://i.scdn.co/image/ab67616d0000b2739c39ba8e4b4b4b4b4b4b4b4b",
	},
}
