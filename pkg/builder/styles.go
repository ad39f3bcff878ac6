package builder

const paragraphStyle = "margin:16px 0; line-height: 1.6;"

func buttonStyle(color string) string {
	return "background-color:" + color + "; border-radius:4px; color:#ffffff; display:inline-block; font-size:16px; font-weight:bold; line-height:44px; text-align:center; text-decoration:none; width:220px; -webkit-text-size-adjust:none;"
}

// Level is a heading level from H1 to H3.
type Level int

const (
	H1 Level = iota + 1
	H2
	H3
)

// normalize clamps out-of-range levels into H1..H3.
func (l Level) normalize() Level {
	switch {
	case l < H1:
		return H1
	case l > H3:
		return H3
	default:
		return l
	}
}

func (l Level) tag() string {
	switch l {
	case H2:
		return "h2"
	case H3:
		return "h3"
	default:
		return "h1"
	}
}

func (l Level) style() string {
	switch l {
	case H2:
		return "margin: 40px 0 10px; font-size: 24px; font-weight: 400; line-height: 1.2em;"
	case H3:
		return "margin: 40px 0 10px; font-size: 18px; font-weight: 400; line-height: 1.2em;"
	default:
		return "margin: 40px 0 10px; font-size: 32px; font-weight: 500; line-height: 1.2em;"
	}
}
