package content

const defaultProfileImage = "/vedant-profile.jpg"

func defaultBackgrounds() map[SectionKey]string {
	return map[SectionKey]string{
		SectionAbout:            "https://hebbkx1anhila5yf.public.blob.vercel-storage.com/about%20me-xjVJydBNu0KiSV3aXomDkHptDnLSRq.png",
		SectionSkills:           "https://hebbkx1anhila5yf.public.blob.vercel-storage.com/skills-kjqaN7GQDjzEFWT7pZ8abRQS6DfTXb.png",
		SectionProjectsFeatured: "https://hebbkx1anhila5yf.public.blob.vercel-storage.com/projeects-aPhGSpss7UFqCD3Vm1nXWndTKJaqhM.jpg",
		SectionExperience:       "https://hebbkx1anhila5yf.public.blob.vercel-storage.com/experience-B24f9rAK1SziWfvaTiWzsLN7Hi05M3.jpg",
		SectionContact:          "/contact-icons.jpg",
	}
}

// DefaultMediaConfig is the compiled-in configuration used when no valid
// media document is persisted yet. It always carries every profile key and
// every section key.
func DefaultMediaConfig() MediaConfig {
	return MediaConfig{
		ProfileImage: defaultProfileImage,
		Profiles: map[ProfileKey]ProfileConfig{
			ProfileRecruiter: {
				Image:         "/professional-recruiter-avatar-blue.jpg",
				BackgroundGif: "https://i.giphy.com/media/v1.Y2lkPTc5MGI3NjExOTZ5eWwwbjRpdWM1amxyd3VueHhteTVzajVjeGZtZGJ1dDc4MXMyNCZlcD12MV9pbnRlcm5hbF9naWZfYnlfaWQmY3Q9dg/16u7Ifl2T4zYfQ932F/giphy.gif",
				Backgrounds:   defaultBackgrounds(),
			},
			ProfileStudent: {
				Image:         "/computer-science-student-avatar-red.jpg",
				BackgroundGif: "https://i.giphy.com/media/v1.Y2lkPTc5MGI3NjExc28yMjMyZmJ6eWtxbmNwdDV6cXk4dWZmcjFhZms2cXBjN2h5ZDJjeSZlcD12MV9pbnRlcm5hbF9naWZfYnlfaWQmY3Q9Zw/QjZXUBUr89CkiWLPjL/giphy.gif",
				Backgrounds:   defaultBackgrounds(),
			},
			ProfileExplorer: {
				Image:         "/tech-explorer-avatar-yellow.jpg",
				BackgroundGif: "https://i.giphy.com/media/v1.Y2lkPTc5MGI3NjExbmxib24ycWo2cjlmazh0NGV5NTZ2Mzd2YWY0M2tvam9oYXBwYW1ocCZlcD12MV9pbnRlcm5hbF9naWZfYnlfaWQmY3Q9Zw/ERKMnDK6tkzJe8YVa3/giphy-downsized-large.gif",
				Backgrounds:   defaultBackgrounds(),
			},
		},
	}
}
