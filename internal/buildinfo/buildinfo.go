package buildinfo

const Graffiti = " _                           \n| | ___ __  _ __   _____   __\n| |/ / '_ \\| '_ \\ / __\\ \\ / /\n|   <| | | | | | | (__ \\ V / \n|_|\\_\\_| |_|_| |_|\\___| \\_/  \n\n"

var (
	BuildTag string = "v0.0.0"
	Name     string = "KNNCV"
	Time     string = ""
)

type buildinfo struct{}

func (buildinfo) Tag() string {
	return BuildTag
}

func (buildinfo) Name() string {
	return Name
}

func (buildinfo) Time() string {
	return Time
}

var Info buildinfo
