package game

import game_constants "Farol/constants/game"

// Voucher IDs. Vouchers are unique, permanent run upgrades sold in the
// shop's fifth slot.
const (
	VoucherGrabber     = 1
	VoucherWasteful    = 2
	VoucherPaintBrush  = 3
	VoucherAntimatter  = 4
	VoucherCrystalBall = 5
)

type VoucherDef struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
}

var voucherTable = map[int]VoucherDef{
	VoucherGrabber:     {ID: VoucherGrabber, Name: "Grabber", Description: "Permanently gain +1 hand per round"},
	VoucherWasteful:    {ID: VoucherWasteful, Name: "Wasteful", Description: "Permanently gain +1 discard per round"},
	VoucherPaintBrush:  {ID: VoucherPaintBrush, Name: "Paint Brush", Description: "Permanently gain +1 hand size"},
	VoucherAntimatter:  {ID: VoucherAntimatter, Name: "Antimatter", Description: "Permanently gain +1 joker slot"},
	VoucherCrystalBall: {ID: VoucherCrystalBall, Name: "Crystal Ball", Description: "Permanently gain +1 consumable slot"},
}

func init() {
	for id, def := range voucherTable {
		def.Price = game_constants.VoucherPrice
		voucherTable[id] = def
	}
}

// VoucherByID looks a voucher up in the catalog.
func VoucherByID(id int) (VoucherDef, bool) {
	def, ok := voucherTable[id]
	return def, ok
}

// UnownedVouchers lists the voucher IDs not yet owned, in catalog order.
func UnownedVouchers(owned []int) []int {
	has := make(map[int]bool, len(owned))
	for _, id := range owned {
		has[id] = true
	}
	var out []int
	for id := VoucherGrabber; id <= VoucherCrystalBall; id++ {
		if !has[id] {
			out = append(out, id)
		}
	}
	return out
}
