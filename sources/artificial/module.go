package artificial

import (
	"go.uber.org/fx"

	"scribe/sources/youtube"
)

var Module = fx.Module("artificial",
	fx.Provide(
		NewAIConfig,
		NewChatClient,
		NewPromptBuilder,
		NewSelector,
		NewInvoker,
		NewPipeline,
		func(x *youtube.TranscriptFetcher) TranscriptSource { return x },
		func(x *youtube.MetadataFetcher) MetadataSource { return x },
		func(x *Invoker) ChatCompleter { return x },
	),
)
