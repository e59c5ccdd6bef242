package cron

// Civil-date conversions after Howard Hinnant's algorithms. Unix day 0
// (1970-01-01) was a Thursday, hence the +4 in the weekday derivation.

type broken struct {
	year   int
	month  int // 1-12
	day    int // 1-31
	hour   int
	minute int
	dow    int // 0-6, Sunday = 0
}

func timestampToBroken(ts int64) broken {
	days := ts / 86400
	secs := ts % 86400
	if secs < 0 {
		days--
		secs += 86400
	}

	year, month, day := civilFromDays(days)
	return broken{
		year:   year,
		month:  month,
		day:    day,
		hour:   int(secs / 3600),
		minute: int(secs % 3600 / 60),
		dow:    int(((days+4)%7 + 7) % 7),
	}
}

func brokenToTimestamp(bt broken) int64 {
	days := daysFromCivil(bt.year, bt.month, bt.day)
	return days*86400 + int64(bt.hour)*3600 + int64(bt.minute)*60
}

func civilFromDays(z int64) (year, month, day int) {
	z += 719468
	era := z
	if z < 0 {
		era -= 146096
	}
	era /= 146097
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1

	m := mp + 3
	if mp >= 10 {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return int(y), int(m), int(d)
}

func daysFromCivil(year, month, day int) int64 {
	y := int64(year)
	if month <= 2 {
		y--
	}
	era := y
	if y < 0 {
		era -= 399
	}
	era /= 400
	yoe := y - era*400

	mp := int64(month + 9)
	if month > 2 {
		mp = int64(month - 3)
	}
	doy := (153*mp+2)/5 + int64(day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}
