package combiner

const (
	promptFirst  = "Enter something: "
	echoFirst    = "\"%s\" is certainly something\n"
	promptSecond = "Now enter something that is nothing i have seen before: "
	echoSecond   = "\"%s\" is probably something new\n"
	announce     = "We now have two old things: \"%s\" and the newer: \"%s\". Watch what happens when we combine them.\n" +
		"We will produce something truly new\n"
	result  = "The newest string that may or may not be something: \"%s\"\n"
	closing = "However, we produced something new that may or may not exist, from two definite existent strings\n"

	combineFormat = "%s%s"
)

const (
	reasonFirst    = "I need it for something"
	reasonSecond   = "I need it for something new"
	reasonCombined = "for vsnprintf"
)

const (
	diagFirst    = "There is something that is no thing so therefore something is nothing\n"
	diagSecond   = "Something new cannot possibly be nothing, unless the original something was nothing\n"
	diagCombined = "Cannot create a string from nothing\n"
)
