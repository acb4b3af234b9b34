package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/darkawower/multiwall/internal/profile"
	"github.com/darkawower/multiwall/internal/schedule"
)

// Profile document format, line oriented:
//
//	[PROFILES]
//	PROFILE:<name>
//	  <device>=<wallpaper_path>
//	[SCHEDULE]
//	<profile>,<hour>,<minute>,<0|1>
//
// Device lines are indented by exactly two spaces and split on the first '='.
// Lines not matching the expected shape for the current section are ignored.

const (
	sectionProfiles = "PROFILES"
	sectionSchedule = "SCHEDULE"
	profilePrefix   = "PROFILE:"
	deviceIndent    = "  "
)

// SaveDocument writes the profile document to path. A write failure aborts
// and may leave a truncated file behind; persistence is last-writer-wins.
func SaveDocument(path string, profiles map[string]*profile.Profile, entries []schedule.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := EncodeDocument(f, profiles, entries); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// EncodeDocument writes the document to w. Profiles and their device lines
// are emitted in sorted order so saves are reproducible.
func EncodeDocument(w io.Writer, profiles map[string]*profile.Profile, entries []schedule.Entry) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "[%s]\n", sectionProfiles)

	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(bw, "%s%s\n", profilePrefix, name)

		p := profiles[name]
		devices := make([]string, 0, len(p.Wallpapers))
		for device := range p.Wallpapers {
			devices = append(devices, device)
		}
		sort.Strings(devices)

		for _, device := range devices {
			fmt.Fprintf(bw, "%s%s=%s\n", deviceIndent, device, p.Wallpapers[device])
		}
	}

	fmt.Fprintf(bw, "[%s]\n", sectionSchedule)
	for _, e := range entries {
		enabled := 0
		if e.Enabled {
			enabled = 1
		}
		fmt.Fprintf(bw, "%s,%d,%d,%d\n", e.Profile, e.Hour, e.Minute, enabled)
	}

	return bw.Flush()
}

// LoadDocument reads the profile document at path. A missing or unreadable
// file is the only failure; malformed lines inside are skipped silently.
func LoadDocument(path string) (map[string]*profile.Profile, []schedule.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return DecodeDocument(f)
}

// DecodeDocument parses the document from r.
func DecodeDocument(r io.Reader) (map[string]*profile.Profile, []schedule.Entry, error) {
	profiles := make(map[string]*profile.Profile)
	var entries []schedule.Entry

	var section, currentProfile string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = line[1 : len(line)-1]
			continue
		}

		switch section {
		case sectionProfiles:
			switch {
			case strings.HasPrefix(line, profilePrefix):
				currentProfile = line[len(profilePrefix):]
				profiles[currentProfile] = &profile.Profile{
					Name:       currentProfile,
					Wallpapers: make(map[string]string),
				}
			case strings.HasPrefix(line, deviceIndent) && currentProfile != "":
				device, path, ok := strings.Cut(line[len(deviceIndent):], "=")
				if !ok {
					continue
				}
				profiles[currentProfile].Wallpapers[device] = path
			}

		case sectionSchedule:
			parts := strings.Split(line, ",")
			if len(parts) != 4 {
				continue
			}
			hour, err1 := strconv.Atoi(parts[1])
			minute, err2 := strconv.Atoi(parts[2])
			enabled, err3 := strconv.Atoi(parts[3])
			if err1 != nil || err2 != nil || err3 != nil || hour < 0 || minute < 0 {
				continue
			}
			entries = append(entries, schedule.Entry{
				Profile: parts[0],
				Hour:    hour,
				Minute:  minute,
				Enabled: enabled == 1,
			})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read document: %w", err)
	}

	return profiles, entries, nil
}
