package booking

import "github.com/hanksha/strajk-bowling/bookingapi"

type ShoeEntry struct {
	ID   string `json:"id"`
	Size string `json:"size"`
}

// Draft is the unsubmitted state of the booking form.
type Draft struct {
	Date    string      `json:"date"`
	Time    string      `json:"time"`
	Players int         `json:"people"`
	Lanes   int         `json:"lanes"`
	Shoes   []ShoeEntry `json:"shoes"`
}

func (d Draft) ShoeSizes() []string {
	sizes := make([]string, 0, len(d.Shoes))
	for _, shoe := range d.Shoes {
		sizes = append(sizes, shoe.Size)
	}
	return sizes
}

// Request builds the booking API payload. Shoe sizes keep roster order.
func (d Draft) Request() bookingapi.Request {
	return bookingapi.Request{
		When:   d.Date + "T" + d.Time,
		Lanes:  d.Lanes,
		People: d.Players,
		Shoes:  d.ShoeSizes(),
	}
}
