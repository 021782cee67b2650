package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/andareed/siftly-bikeshare/config"
	"github.com/andareed/siftly-bikeshare/trips"
)

// Seven chicago trips: two in january, five in june; 2017-06-05 is a monday.
const chicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1,2017-01-01 09:07:57,2017-01-01 09:20:53,776,Canal St,Clinton St,Subscriber,Male,1992.0
2,2017-01-02 17:10:00,2017-01-02 17:20:00,600,Canal St,Wells St,Customer,,
3,2017-06-05 08:00:00,2017-06-05 08:05:00,300,Clinton St,Canal St,Subscriber,Female,1985
4,2017-06-05 08:30:00,2017-06-05 08:40:00,600,Canal St,Clinton St,Subscriber,Male,1992
5,2017-06-06 17:00:00,2017-06-06 17:30:00,1800,Wells St,Canal St,Customer,,
6,2017-06-07 17:15:00,2017-06-07 17:20:00,300,Canal St,Clinton St,Subscriber,Female,1970
7,2017-06-12 18:00:00,2017-06-12 18:10:00,600,Clinton St,Wells St,Subscriber,Male,1999
`

const washingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1,2017-06-05 07:00:00,2017-06-05 07:12:00,720,14th & V St NW,Lincoln Memorial,Registered
2,2017-06-06 07:00:00,2017-06-06 07:06:00,360,Lincoln Memorial,14th & V St NW,Casual
`

func writeFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"chicago.csv":       chicagoCSV,
		"washington.csv":    washingtonCSV,
		"new_york_city.csv": ",Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func testConfig(dir, cities, months, days string) config.Config {
	return config.Config{
		DataDir:     dir,
		SQLiteTable: trips.DefaultSQLiteTable,
		Cities:      cities,
		Months:      months,
		Days:        days,
	}
}

// stubClock makes every query take exactly step.
func stubClock(t *testing.T, step time.Duration) {
	t.Helper()
	prev := now
	t.Cleanup(func() { now = prev })
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * step)
	}
}
